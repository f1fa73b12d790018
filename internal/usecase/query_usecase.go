package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
	"github.com/geoinsight-service/internal/usecase/dto"
)

// QueryUseCase chains the full free-text flow: resolve the location,
// classify the query, derive a bounding box from the gazetteer, run the AOI
// pipeline and interpret the result. Each stage degrades independently: an
// unresolved location or unknown city still returns classification data.
type QueryUseCase struct {
	resolution *ResolutionUseCase
	classifier *QueryClassifier
	analysis   Analyzer
	insights   *InsightsUseCase
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewQueryUseCase(
	resolution *ResolutionUseCase,
	classifier *QueryClassifier,
	analysis Analyzer,
	insights *InsightsUseCase,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *QueryUseCase {
	return &QueryUseCase{
		resolution: resolution,
		classifier: classifier,
		analysis:   analysis,
		insights:   insights,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Query answers one free-text question about a place.
func (uc *QueryUseCase) Query(ctx context.Context, query string) (*dto.QueryResponse, error) {
	query = strings.TrimSpace(query)

	cacheKey := queryCacheKey(query)
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached dto.QueryResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	resolved := uc.resolution.Resolve(ctx, query)
	classification := uc.classifier.Classify(query)
	recommendations := uc.classifier.Recommendations(classification.Category)

	resp := &dto.QueryResponse{
		Query:           query,
		Location:        dto.ConvertResolved(resolved),
		Classification:  &classification,
		Recommendations: recommendations,
	}

	if !resolved.Resolved() {
		uc.logger.Info("Query location unresolved", zap.String("query", query))
		return resp, nil
	}

	center, ok := domain.CityCoordinates[resolved.MatchedName]
	if !ok {
		uc.logger.Info("Resolved location has no gazetteer entry",
			zap.String("matched_name", resolved.MatchedName))
		return resp, nil
	}

	bbox := domain.AroundPoint(center)
	resp.BBox = &bbox

	metrics, err := uc.analysis.Analyze(ctx, bbox)
	if err != nil {
		return nil, err
	}
	converted := dto.ConvertMetrics(metrics)
	resp.Metrics = &converted

	resp.Insights = uc.insights.Generate(ctx, InsightInput{
		Query:           query,
		Location:        resolved,
		Classification:  classification,
		Recommendations: recommendations,
		Metrics:         metrics,
	})

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache query response", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func queryCacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(query)))
	return "query:" + hex.EncodeToString(sum[:16])
}
