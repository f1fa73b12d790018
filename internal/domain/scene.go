package domain

import "time"

// SceneImage is the metadata record of one stored satellite scene.
type SceneImage struct {
	ID          int64      `json:"id" db:"id"`
	Location    string     `json:"location" db:"location"`
	Sublocation string     `json:"sublocation,omitempty" db:"sublocation"`
	Path        string     `json:"path" db:"path"`
	CapturedAt  *time.Time `json:"captured_at,omitempty" db:"captured_at"`
	UploadedAt  time.Time  `json:"uploaded_at" db:"uploaded_at"`
}

// LocationStat counts stored scenes per location.
type LocationStat struct {
	Location string `json:"location" db:"location"`
	Scenes   int    `json:"scenes" db:"scenes"`
}
