package repository

import (
	"context"

	"github.com/geoinsight-service/internal/domain"
)

// StreamRepository publishes and consumes scene-upload events.
type StreamRepository interface {
	PublishToStream(ctx context.Context, stream string, data interface{}) error
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
