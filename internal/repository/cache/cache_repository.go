package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// metricsKey encodes the box at full float64 precision so distinct boxes
// never share an entry, however close their coordinates.
func metricsKey(bbox domain.BoundingBox) string {
	coords := []float64{bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat}

	var b strings.Builder
	b.WriteString("metrics")
	for _, v := range coords {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

func (r *cacheRepository) GetMetrics(ctx context.Context, bbox domain.BoundingBox) (*domain.InfrastructureMetrics, error) {
	data, err := r.Get(ctx, metricsKey(bbox))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var m domain.InfrastructureMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		r.logger.Error("Failed to unmarshal metrics from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal metrics: %w", err)
	}

	return &m, nil
}

func (r *cacheRepository) SetMetrics(ctx context.Context, bbox domain.BoundingBox, m *domain.InfrastructureMetrics, ttl time.Duration) error {
	data, err := json.Marshal(m)
	if err != nil {
		r.logger.Error("Failed to marshal metrics", zap.Error(err))
		return fmt.Errorf("marshal metrics: %w", err)
	}

	return r.Set(ctx, metricsKey(bbox), data, ttl)
}
