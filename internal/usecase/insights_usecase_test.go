package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/pkg/errors"
	"github.com/geoinsight-service/internal/usecase"
)

func insightInput() usecase.InsightInput {
	return usecase.InsightInput{
		Query:    "infrastructure in pune",
		Location: domain.ResolvedLocation{MatchedName: "Pune", Confidence: 89},
		Classification: domain.QueryClassification{
			Category: "infrastructure",
			Intent:   "information",
			Priority: "medium",
		},
		Recommendations: []string{
			"Analyze road network density",
			"Assess building infrastructure",
			"Evaluate intersection quality",
			"Extra recommendation",
		},
		Metrics: &domain.InfrastructureMetrics{
			RoadKmPerKm2:    4.2,
			BuildingsPerKm2: 310.5,
			InfraIndex:      0.41,
			AccessIndex:     0.22,
			SocioEconScore:  22.05,
		},
	}
}

func TestGenerate_ModelOutputDecoded(t *testing.T) {
	repo := new(MockInsightsRepository)
	repo.On("GenerateText", mock.Anything, mock.Anything).Return(
		`{"summary_text":"Dense road grid.","key_findings":["High road density"],`+
			`"priority_actions":["Add clinics"],"scores":{"infra_index":0.4,"access_index":0.2,`+
			`"socio_score":22.0},"confidence":0.7}`, nil).Once()

	uc := usecase.NewInsightsUseCase(repo, zap.NewNop())
	insights := uc.Generate(context.Background(), insightInput())

	require.NotNil(t, insights)
	assert.Equal(t, "model", insights.Source)
	assert.Equal(t, "Dense road grid.", insights.SummaryText)
	assert.Equal(t, []string{"High road density"}, insights.KeyFindings)
	assert.Equal(t, 0.7, insights.Confidence)
	assert.Equal(t, 0.4, insights.Scores.InfraIndex)
}

func TestGenerate_PartialModelOutputGetsTypedDefaults(t *testing.T) {
	// Missing scores and confidence: defaults come from the metrics record
	repo := new(MockInsightsRepository)
	repo.On("GenerateText", mock.Anything, mock.Anything).Return(
		`{"summary_text":"Sparse area."}`, nil).Once()

	in := insightInput()
	uc := usecase.NewInsightsUseCase(repo, zap.NewNop())
	insights := uc.Generate(context.Background(), in)

	require.NotNil(t, insights)
	assert.Equal(t, "model", insights.Source)
	assert.Equal(t, "Sparse area.", insights.SummaryText)
	assert.Empty(t, insights.KeyFindings)
	assert.Equal(t, in.Metrics.InfraIndex, insights.Scores.InfraIndex)
	assert.Equal(t, in.Metrics.SocioEconScore, insights.Scores.SocioScore)
	assert.Zero(t, insights.Confidence)
}

func TestGenerate_ConfidenceClampedToUnitRange(t *testing.T) {
	repo := new(MockInsightsRepository)
	repo.On("GenerateText", mock.Anything, mock.Anything).Return(
		`{"summary_text":"x","confidence":3.5}`, nil).Once()

	uc := usecase.NewInsightsUseCase(repo, zap.NewNop())
	insights := uc.Generate(context.Background(), insightInput())

	require.NotNil(t, insights)
	assert.Equal(t, 1.0, insights.Confidence)
}

func TestGenerate_NonJSONModelOutputFallsBackToHeuristic(t *testing.T) {
	repo := new(MockInsightsRepository)
	repo.On("GenerateText", mock.Anything, mock.Anything).Return(
		"Sure! Here are your insights: the area looks fine.", nil).Once()

	uc := usecase.NewInsightsUseCase(repo, zap.NewNop())
	insights := uc.Generate(context.Background(), insightInput())

	require.NotNil(t, insights)
	assert.Equal(t, "heuristic", insights.Source)
	assert.Equal(t, 0.45, insights.Confidence)
	assert.Contains(t, insights.SummaryText, "infrastructure index=0.41")
	// Priority actions are capped at three recommendations
	assert.Len(t, insights.PriorityActions, 3)
	assert.Equal(t, "Action: Analyze road network density", insights.PriorityActions[0])
}

func TestGenerate_ModelErrorFallsBackToHeuristic(t *testing.T) {
	repo := new(MockInsightsRepository)
	repo.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.ErrServiceUnavailable).Once()

	uc := usecase.NewInsightsUseCase(repo, zap.NewNop())
	insights := uc.Generate(context.Background(), insightInput())

	require.NotNil(t, insights)
	assert.Equal(t, "heuristic", insights.Source)
}

func TestGenerate_NoRepositoryUsesHeuristic(t *testing.T) {
	uc := usecase.NewInsightsUseCase(nil, zap.NewNop())

	in := insightInput()
	in.Recommendations = nil
	insights := uc.Generate(context.Background(), in)

	require.NotNil(t, insights)
	assert.Equal(t, "heuristic", insights.Source)
	assert.Equal(t, []string{"Review infrastructure and access metrics"}, insights.PriorityActions)
}
