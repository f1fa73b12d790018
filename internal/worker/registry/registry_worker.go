package registry

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/worker"
)

// RegistryWorker listens for scene-upload events and invalidates the
// location registry, so a freshly uploaded location becomes resolvable
// without restarting the service.
type RegistryWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	locations    *usecase.LocationRegistry
	consumerName string
}

func NewRegistryWorker(
	streamRepo repository.StreamRepository,
	locations *usecase.LocationRegistry,
	consumerGroup string,
	logger *zap.Logger,
) *RegistryWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RegistryWorker{
		BaseWorker:   worker.NewBaseWorker("registry-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		locations:    locations,
		consumerName: consumerName,
	}
}

// Start consumes the upload stream until stopped.
func (w *RegistryWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RegistryWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSceneUploads, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamSceneUploads, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage invalidates the registry for one upload event. Malformed
// events are acked and dropped so they do not wedge the stream.
func (w *RegistryWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	event, err := domain.ParseSceneUploadEvent(msg.Data)
	if err != nil {
		logger.Warn("Skipping malformed upload event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	w.locations.Invalidate()
	logger.Info("Registry invalidated after scene upload",
		zap.String("location", event.Location),
		zap.String("path", event.Path))

	w.ack(ctx, msg.ID)
}

func (w *RegistryWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamSceneUploads, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
