package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
)

type sceneRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSceneRepository creates the metadata repository for stored scenes.
func NewSceneRepository(db *DB, logger *zap.Logger) repository.SceneRepository {
	return &sceneRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores one scene record and returns its generated ID.
func (r *sceneRepository) Insert(ctx context.Context, scene *domain.SceneImage) (int64, error) {
	query := `
		INSERT INTO scene_images (location, sublocation, path, captured_at, uploaded_at)
		VALUES (:location, :sublocation, :path, :captured_at, :uploaded_at)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, scene)
	if err != nil {
		r.logger.Error("failed to insert scene",
			zap.String("location", scene.Location),
			zap.Error(err))
		return 0, fmt.Errorf("insert scene: %w", err)
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan scene id: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("insert scene rows error: %w", err)
	}

	return id, nil
}

// ListByLocation returns the newest scenes for one location.
func (r *sceneRepository) ListByLocation(ctx context.Context, location string, limit int) ([]domain.SceneImage, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, location, sublocation, path, captured_at, uploaded_at
		FROM scene_images
		WHERE location = $1
		ORDER BY uploaded_at DESC
		LIMIT $2
	`

	scenes := make([]domain.SceneImage, 0, limit)
	if err := r.db.SelectContext(ctx, &scenes, query, location, limit); err != nil {
		r.logger.Error("failed to list scenes",
			zap.String("location", location),
			zap.Error(err))
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	return scenes, nil
}

// CountByLocation aggregates stored scene counts per location.
func (r *sceneRepository) CountByLocation(ctx context.Context) ([]domain.LocationStat, error) {
	query := `
		SELECT location, COUNT(*) as scenes
		FROM scene_images
		GROUP BY location
		ORDER BY scenes DESC, location
	`

	var stats []domain.LocationStat
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		r.logger.Error("failed to count scenes by location", zap.Error(err))
		return nil, fmt.Errorf("count scenes by location: %w", err)
	}

	return stats, nil
}
