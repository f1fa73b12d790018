package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
)

// MockFeatureRepository is a mock of FeatureRepository
type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) QueryFeatures(ctx context.Context, bbox domain.BoundingBox, filter repository.FeatureFilter) ([]domain.Element, error) {
	args := m.Called(ctx, bbox, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Element), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetMetrics(ctx context.Context, bbox domain.BoundingBox) (*domain.InfrastructureMetrics, error) {
	args := m.Called(ctx, bbox)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InfrastructureMetrics), args.Error(1)
}

func (m *MockCacheRepository) SetMetrics(ctx context.Context, bbox domain.BoundingBox, metrics *domain.InfrastructureMetrics, ttl time.Duration) error {
	args := m.Called(ctx, bbox, metrics, ttl)
	return args.Error(0)
}

// MockRegistrySource is a mock of RegistrySource
type MockRegistrySource struct {
	mock.Mock
}

func (m *MockRegistrySource) ListLocationSlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockInsightsRepository is a mock of InsightsRepository
type MockInsightsRepository struct {
	mock.Mock
}

func (m *MockInsightsRepository) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockSceneRepository is a mock of SceneRepository
type MockSceneRepository struct {
	mock.Mock
}

func (m *MockSceneRepository) Insert(ctx context.Context, scene *domain.SceneImage) (int64, error) {
	args := m.Called(ctx, scene)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSceneRepository) ListByLocation(ctx context.Context, location string, limit int) ([]domain.SceneImage, error) {
	args := m.Called(ctx, location, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SceneImage), args.Error(1)
}

func (m *MockSceneRepository) CountByLocation(ctx context.Context) ([]domain.LocationStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationStat), args.Error(1)
}

// MockSceneStore is a mock of SceneStore
type MockSceneStore struct {
	mock.Mock
}

func (m *MockSceneStore) Save(ctx context.Context, location, sublocation, filename string, data []byte) (string, error) {
	args := m.Called(ctx, location, sublocation, filename, data)
	return args.String(0), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}
