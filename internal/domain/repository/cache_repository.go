package repository

import (
	"context"
	"time"

	"github.com/geoinsight-service/internal/domain"
)

// CacheRepository is the response-level cache. The AOI pipeline itself is
// cache-free; only the delivery-facing use cases consult this.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetMetrics(ctx context.Context, bbox domain.BoundingBox) (*domain.InfrastructureMetrics, error)
	SetMetrics(ctx context.Context, bbox domain.BoundingBox, m *domain.InfrastructureMetrics, ttl time.Duration) error
}
