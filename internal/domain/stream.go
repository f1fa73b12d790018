package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// StreamSceneUploads is the Redis stream carrying scene-upload events.
const StreamSceneUploads = "scene:uploads"

// StreamMessage is one raw message read from a stream.
type StreamMessage struct {
	ID   string
	Data string
}

// SceneUploadEvent is published after a scene is stored and triggers an
// explicit registry invalidation in the worker.
type SceneUploadEvent struct {
	Location    string    `json:"location"`
	Sublocation string    `json:"sublocation,omitempty"`
	Path        string    `json:"path"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ParseSceneUploadEvent decodes a stream message payload.
func ParseSceneUploadEvent(data string) (*SceneUploadEvent, error) {
	var ev SceneUploadEvent
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		return nil, fmt.Errorf("parse scene upload event: %w", err)
	}
	if ev.Location == "" {
		return nil, fmt.Errorf("scene upload event missing location")
	}
	return &ev, nil
}
