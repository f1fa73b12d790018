package usecase

import (
	"strings"

	"github.com/geoinsight-service/internal/domain"
)

// keyword tables for the heuristic query classifier. Matching is substring
// based over the lowercased query, mirroring the coarse routing the service
// needs before analysis.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"infrastructure", []string{"road", "building", "intersection", "infrastructure", "development"}},
	{"quality_of_life", []string{"healthcare", "hospital", "school", "education", "quality", "life", "amenity"}},
	{"road_conditions", []string{"traffic", "transportation", "connectivity", "road condition"}},
	{"industry", []string{"commercial", "residential", "business", "industrial", "store"}},
	{"comparison", []string{"compare", "versus", "vs", "difference", "between"}},
}

var intentKeywords = []struct {
	intent string
	words  []string
}{
	{"comparison", []string{"compare", "versus", "vs", "difference"}},
	{"prediction", []string{"predict", "future", "will", "going to"}},
	{"analysis", []string{"analyze", "analysis", "detailed"}},
	{"assessment", []string{"assess", "status", "current", "how"}},
}

var metricKeywords = []struct {
	metric string
	words  []string
}{
	{"roads", []string{"road", "highway", "street"}},
	{"buildings", []string{"building", "structure"}},
	{"hospitals", []string{"hospital", "medical", "clinic"}},
	{"schools", []string{"school", "education", "university"}},
	{"intersections", []string{"intersection", "crossing", "junction"}},
}

var categoryRecommendations = map[string][]string{
	"infrastructure": {
		"Analyze road network density",
		"Assess building infrastructure",
		"Evaluate intersection quality",
	},
	"quality_of_life": {
		"Check healthcare accessibility",
		"Evaluate educational facilities",
		"Assess amenity coverage",
	},
	"road_conditions": {
		"Analyze traffic patterns",
		"Assess road connectivity",
		"Evaluate transportation infrastructure",
	},
	"industry": {
		"Analyze commercial development",
		"Assess residential infrastructure",
		"Evaluate industrial potential",
	},
	"comparison": {
		"Generate comparative reports",
		"Create visualization charts",
		"Provide ranking analysis",
	},
	"general": {
		"Conduct comprehensive analysis",
		"Generate overview report",
		"Create development roadmap",
	},
}

// QueryClassifier buckets a free-text query by keyword rules. It needs no
// external service and always succeeds, which makes it the terminal
// fallback of the classification chain.
type QueryClassifier struct{}

func NewQueryClassifier() *QueryClassifier {
	return &QueryClassifier{}
}

// Classify derives category, intent and requested metrics from the query.
func (c *QueryClassifier) Classify(query string) domain.QueryClassification {
	lower := strings.ToLower(query)

	category := "general"
	for _, entry := range categoryKeywords {
		if containsAny(lower, entry.words) {
			category = entry.category
			break
		}
	}

	intent := "information"
	for _, entry := range intentKeywords {
		if containsAny(lower, entry.words) {
			intent = entry.intent
			break
		}
	}

	var metrics []string
	for _, entry := range metricKeywords {
		if containsAny(lower, entry.words) {
			metrics = append(metrics, entry.metric)
		}
	}

	analysisType := "statistical"
	if strings.Contains(lower, "area") || strings.Contains(lower, "location") {
		analysisType = "spatial"
	}

	priority := "medium"
	if containsAny(lower, []string{"urgent", "important", "critical"}) {
		priority = "high"
	}

	confidence := 0.6
	if category != "general" {
		confidence = 0.8
	}

	return domain.QueryClassification{
		Category:           category,
		Intent:             intent,
		AnalysisType:       analysisType,
		Priority:           priority,
		Metrics:            metrics,
		RequiresComparison: intent == "comparison",
		Confidence:         confidence,
	}
}

// Recommendations lists follow-up suggestions for a category.
func (c *QueryClassifier) Recommendations(category string) []string {
	if recs, ok := categoryRecommendations[category]; ok {
		return recs
	}
	return []string{"Analyze the area", "Generate report", "Provide insights"}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
