package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
)

const heuristicConfidence = 0.45

// InsightsUseCase turns one metrics record into a structured interpretation.
// It walks an ordered strategy list (model call, then deterministic
// heuristic) and returns the first strategy that succeeds; the heuristic
// never fails, so Generate always produces a value.
type InsightsUseCase struct {
	insightsRepo repository.InsightsRepository
	logger       *zap.Logger
}

func NewInsightsUseCase(insightsRepo repository.InsightsRepository, logger *zap.Logger) *InsightsUseCase {
	return &InsightsUseCase{
		insightsRepo: insightsRepo,
		logger:       logger,
	}
}

// InsightInput carries everything a strategy may use.
type InsightInput struct {
	Query           string
	Location        domain.ResolvedLocation
	Classification  domain.QueryClassification
	Recommendations []string
	Metrics         *domain.InfrastructureMetrics
}

type insightStrategy struct {
	name string
	run  func(ctx context.Context, in InsightInput) (*domain.Insights, error)
}

// Generate produces insights for one analyzed query.
func (uc *InsightsUseCase) Generate(ctx context.Context, in InsightInput) *domain.Insights {
	strategies := []insightStrategy{
		{name: "model", run: uc.fromModel},
		{name: "heuristic", run: uc.fromHeuristic},
	}

	for _, s := range strategies {
		insights, err := s.run(ctx, in)
		if err != nil {
			uc.logger.Warn("Insight strategy failed, trying next",
				zap.String("strategy", s.name),
				zap.Error(err))
			continue
		}
		return insights
	}

	// Unreachable: the heuristic strategy cannot fail.
	return nil
}

// modelInsights mirrors the JSON schema the prompt demands. Pointer fields
// let the decoder distinguish absent values from zero values.
type modelInsights struct {
	SummaryText     *string  `json:"summary_text"`
	KeyFindings     []string `json:"key_findings"`
	PriorityActions []string `json:"priority_actions"`
	Scores          *struct {
		InfraIndex  *float64 `json:"infra_index"`
		AccessIndex *float64 `json:"access_index"`
		SocioScore  *float64 `json:"socio_score"`
	} `json:"scores"`
	Confidence *float64 `json:"confidence"`
}

func (uc *InsightsUseCase) fromModel(ctx context.Context, in InsightInput) (*domain.Insights, error) {
	if uc.insightsRepo == nil {
		return nil, fmt.Errorf("no insights service configured")
	}

	text, err := uc.insightsRepo.GenerateText(ctx, buildInsightPrompt(in))
	if err != nil {
		return nil, err
	}

	var parsed modelInsights
	decoder := json.NewDecoder(strings.NewReader(strings.TrimSpace(text)))
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("model output is not a JSON object: %w", err)
	}

	// Typed defaults per field: a partially valid object is usable, a
	// missing field falls back to the metrics-derived value.
	insights := &domain.Insights{
		SummaryText:     "Insufficient data for automated insights.",
		KeyFindings:     []string{},
		PriorityActions: []string{},
		Scores:          scoresFromMetrics(in.Metrics),
		Confidence:      0.0,
		Source:          "model",
	}
	if parsed.SummaryText != nil && strings.TrimSpace(*parsed.SummaryText) != "" {
		insights.SummaryText = strings.TrimSpace(*parsed.SummaryText)
	}
	if len(parsed.KeyFindings) > 0 {
		insights.KeyFindings = parsed.KeyFindings
	}
	if len(parsed.PriorityActions) > 0 {
		insights.PriorityActions = parsed.PriorityActions
	}
	if parsed.Scores != nil {
		if parsed.Scores.InfraIndex != nil {
			insights.Scores.InfraIndex = *parsed.Scores.InfraIndex
		}
		if parsed.Scores.AccessIndex != nil {
			insights.Scores.AccessIndex = *parsed.Scores.AccessIndex
		}
		if parsed.Scores.SocioScore != nil {
			insights.Scores.SocioScore = *parsed.Scores.SocioScore
		}
	}
	if parsed.Confidence != nil {
		c := *parsed.Confidence
		if c < 0 {
			c = 0
		}
		if c > 1 {
			c = 1
		}
		insights.Confidence = c
	}

	return insights, nil
}

func (uc *InsightsUseCase) fromHeuristic(_ context.Context, in InsightInput) (*domain.Insights, error) {
	m := in.Metrics
	if m == nil {
		return &domain.Insights{
			SummaryText:     "Insufficient data for automated insights.",
			KeyFindings:     []string{},
			PriorityActions: []string{"Review infrastructure and access metrics"},
			Confidence:      heuristicConfidence,
			Source:          "heuristic",
		}, nil
	}

	summary := fmt.Sprintf(
		"Synthesizing map metrics: infrastructure index=%.2f, access index=%.2f, socio score=%.1f. "+
			"This suggests moderate infrastructure with room to improve healthcare access.",
		m.InfraIndex, m.AccessIndex, m.SocioEconScore)

	findings := []string{
		fmt.Sprintf("Road density ≈ %.2f km/km²", m.RoadKmPerKm2),
		fmt.Sprintf("Buildings/km² ≈ %.1f", m.BuildingsPerKm2),
		fmt.Sprintf("Socio score ≈ %.1f", m.SocioEconScore),
	}

	actions := make([]string, 0, 3)
	for i, r := range in.Recommendations {
		if i == 3 {
			break
		}
		actions = append(actions, "Action: "+r)
	}
	if len(actions) == 0 {
		actions = append(actions, "Review infrastructure and access metrics")
	}

	return &domain.Insights{
		SummaryText:     summary,
		KeyFindings:     findings,
		PriorityActions: actions,
		Scores:          scoresFromMetrics(m),
		Confidence:      heuristicConfidence,
		Source:          "heuristic",
	}, nil
}

func scoresFromMetrics(m *domain.InfrastructureMetrics) domain.InsightScores {
	if m == nil {
		return domain.InsightScores{}
	}
	return domain.InsightScores{
		InfraIndex:  m.InfraIndex,
		AccessIndex: m.AccessIndex,
		SocioScore:  m.SocioEconScore,
	}
}

func buildInsightPrompt(in InsightInput) string {
	metricsJSON, _ := json.Marshal(in.Metrics)

	var b strings.Builder
	b.WriteString("You are an expert urban analyst. Given the structured map-derived metrics and the user's query,\n")
	b.WriteString("produce a concise interpretation aligned with the classification and the recommendations.\n\n")
	fmt.Fprintf(&b, "USER QUERY: %s\n", in.Query)
	fmt.Fprintf(&b, "LOCATION: %s (sublocation=%s)\n", in.Location.MatchedName, in.Location.Sublocation)
	fmt.Fprintf(&b, "CLASSIFICATION: category=%s, intent=%s, priority=%s\n",
		in.Classification.Category, in.Classification.Intent, in.Classification.Priority)
	fmt.Fprintf(&b, "RECOMMENDATIONS: %s\n", strings.Join(in.Recommendations, "; "))
	fmt.Fprintf(&b, "METRICS (JSON): %s\n\n", metricsJSON)
	b.WriteString("Return ONLY a single JSON object matching exactly this schema:\n")
	b.WriteString(`{"summary_text": "one to three sentences", "key_findings": ["..."], ` +
		`"priority_actions": ["..."], "scores": {"infra_index": number, "access_index": number, ` +
		`"socio_score": number}, "confidence": number}` + "\n")
	b.WriteString("Rules: keep summary_text tied to the metric numbers, at most 3 key findings, ")
	b.WriteString("conservative confidence in [0,1]. Valid JSON only, no extra text, no backticks.\n")

	return b.String()
}
