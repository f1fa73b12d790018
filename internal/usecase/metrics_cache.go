package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
)

// CachedAnalysis fronts the AOI pipeline with a read-through metrics cache.
// This wrapper is the only place bounding-box results are memoized; the
// pipeline behind it stays cache-free. A nil cache repository degrades to a
// plain pass-through.
type CachedAnalysis struct {
	analysis  Analyzer
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewCachedAnalysis(
	analysis Analyzer,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CachedAnalysis {
	return &CachedAnalysis{
		analysis:  analysis,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Analyze serves a cached record when one exists for the box, otherwise
// delegates to the pipeline and stores the result. Cache write failures are
// logged, not surfaced.
func (c *CachedAnalysis) Analyze(ctx context.Context, bbox domain.BoundingBox) (*domain.InfrastructureMetrics, error) {
	if c.cacheRepo != nil {
		if cached, err := c.cacheRepo.GetMetrics(ctx, bbox); err == nil && cached != nil {
			return cached, nil
		}
	}

	metrics, err := c.analysis.Analyze(ctx, bbox)
	if err != nil {
		return nil, err
	}

	if c.cacheRepo != nil {
		if err := c.cacheRepo.SetMetrics(ctx, bbox, metrics, c.cacheTTL); err != nil {
			c.logger.Warn("Failed to cache metrics", zap.Error(err))
		}
	}

	return metrics, nil
}
