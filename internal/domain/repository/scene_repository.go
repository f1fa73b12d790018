package repository

import (
	"context"

	"github.com/geoinsight-service/internal/domain"
)

// SceneRepository persists scene-image metadata.
type SceneRepository interface {
	Insert(ctx context.Context, scene *domain.SceneImage) (int64, error)
	ListByLocation(ctx context.Context, location string, limit int) ([]domain.SceneImage, error)
	CountByLocation(ctx context.Context) ([]domain.LocationStat, error)
}

// SceneStore writes scene files into the media store and reports the stored
// relative path.
type SceneStore interface {
	Save(ctx context.Context, location, sublocation, filename string, data []byte) (string, error)
}
