package domain

// QueryClassification categorizes a free-text query.
type QueryClassification struct {
	Category           string   `json:"category"`
	Intent             string   `json:"intent"`
	AnalysisType       string   `json:"analysis_type"`
	Priority           string   `json:"priority"`
	Metrics            []string `json:"metrics"`
	RequiresComparison bool     `json:"requires_comparison"`
	Confidence         float64  `json:"confidence"`
}

// InsightScores echoes the headline indices inside a generated insight.
type InsightScores struct {
	InfraIndex  float64 `json:"infra_index"`
	AccessIndex float64 `json:"access_index"`
	SocioScore  float64 `json:"socio_score"`
}

// Insights is the structured interpretation of one metrics record, either
// produced by the text-understanding service or by the heuristic fallback.
type Insights struct {
	SummaryText     string        `json:"summary_text"`
	KeyFindings     []string      `json:"key_findings"`
	PriorityActions []string      `json:"priority_actions"`
	Scores          InsightScores `json:"scores"`
	Confidence      float64       `json:"confidence"`
	Source          string        `json:"source"` // "model" or "heuristic"
}
