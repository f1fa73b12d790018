package dto

// AnalyzeRequest asks for metrics over an explicit bounding box.
type AnalyzeRequest struct {
	MinLon float64 `json:"min_lon" validate:"longitude_range"`
	MinLat float64 `json:"min_lat" validate:"latitude_range"`
	MaxLon float64 `json:"max_lon" validate:"longitude_range"`
	MaxLat float64 `json:"max_lat" validate:"latitude_range"`
}

// ResolveRequest asks to resolve free text to a known location.
type ResolveRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

// QueryRequest runs the full chain: resolve, classify, analyze, interpret.
type QueryRequest struct {
	Query string `json:"query" validate:"required,min=2,max=500"`
}

// SceneListRequest lists stored scenes for a location.
type SceneListRequest struct {
	Location string `json:"location" validate:"required,min=1"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=200"`
}
