package registry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/worker/registry"
)

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

type stubSource struct {
	mu    sync.Mutex
	slugs []string
	calls int
}

func (s *stubSource) ListLocationSlugs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]string, len(s.slugs))
	copy(out, s.slugs)
	return out, nil
}

func (s *stubSource) setSlugs(slugs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slugs = slugs
}

func TestRegistryWorker_InvalidatesOnUploadEvent(t *testing.T) {
	source := &stubSource{slugs: []string{"pune"}}
	locations := usecase.NewLocationRegistry(source, map[string]string{}, zap.NewNop())

	// Warm the snapshot, then change the underlying store
	require.Equal(t, []string{"Pune"}, locations.Names(context.Background()))
	source.setSlugs([]string{"pune", "nagpur"})
	assert.Equal(t, []string{"Pune"}, locations.Names(context.Background()))

	msgChan := make(chan domain.StreamMessage, 2)
	msgChan <- domain.StreamMessage{ID: "1-0", Data: `{"location":"Nagpur","path":"nagpur/general/a.png"}`}
	msgChan <- domain.StreamMessage{ID: "2-0", Data: `not json`}
	close(msgChan)

	streamRepo := new(MockStreamRepository)
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamSceneUploads, "test-group").Return(nil).Once()
	streamRepo.On("ConsumeStream", mock.Anything, domain.StreamSceneUploads, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil).Once()
	streamRepo.On("AckMessage", mock.Anything, domain.StreamSceneUploads, "test-group", "1-0").Return(nil).Once()
	streamRepo.On("AckMessage", mock.Anything, domain.StreamSceneUploads, "test-group", "2-0").Return(nil).Once()

	w := registry.NewRegistryWorker(streamRepo, locations, "test-group", zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not drain the stream in time")
	}

	// Invalidation forces the next read to pick up the new location
	assert.Equal(t, []string{"Nagpur", "Pune"}, locations.Names(context.Background()))
	streamRepo.AssertExpectations(t)
}

func TestRegistryWorker_StopsOnStopSignal(t *testing.T) {
	source := &stubSource{slugs: []string{"pune"}}
	locations := usecase.NewLocationRegistry(source, map[string]string{}, zap.NewNop())

	msgChan := make(chan domain.StreamMessage)

	streamRepo := new(MockStreamRepository)
	streamRepo.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	streamRepo.On("ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil).Once()

	w := registry.NewRegistryWorker(streamRepo, locations, "test-group", zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop in time")
	}
}
