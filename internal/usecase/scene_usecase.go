package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
	"github.com/geoinsight-service/internal/pkg/errors"
	"github.com/geoinsight-service/internal/usecase/dto"
)

// SceneUseCase stores satellite scenes, records their metadata and
// announces uploads on the stream so the registry worker can invalidate the
// location set.
type SceneUseCase struct {
	store      repository.SceneStore
	sceneRepo  repository.SceneRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewSceneUseCase(
	store repository.SceneStore,
	sceneRepo repository.SceneRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *SceneUseCase {
	return &SceneUseCase{
		store:      store,
		sceneRepo:  sceneRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Upload stores the file, persists the metadata row and publishes the
// upload event. A failed publish does not fail the upload; the registry
// catches up on its next full refresh.
func (uc *SceneUseCase) Upload(
	ctx context.Context,
	location, sublocation, filename string,
	data []byte,
) (*dto.UploadResponse, error) {
	if strings.TrimSpace(location) == "" {
		return nil, errors.ErrInvalidRequest.WithDetails("location is required")
	}
	if len(data) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails("file is empty")
	}

	path, err := uc.store.Save(ctx, location, sublocation, filename, data)
	if err != nil {
		return nil, err
	}

	scene := &domain.SceneImage{
		Location:    location,
		Sublocation: sublocation,
		Path:        path,
		UploadedAt:  time.Now().UTC(),
	}

	id, err := uc.sceneRepo.Insert(ctx, scene)
	if err != nil {
		return nil, err
	}
	scene.ID = id

	event := domain.SceneUploadEvent{
		Location:    location,
		Sublocation: sublocation,
		Path:        path,
		UploadedAt:  scene.UploadedAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamSceneUploads, event); err != nil {
		uc.logger.Warn("Failed to publish scene upload event",
			zap.String("location", location),
			zap.Error(err))
	}

	uc.logger.Info("Scene uploaded",
		zap.Int64("id", id),
		zap.String("location", location),
		zap.String("path", path))

	return &dto.UploadResponse{
		ID:          id,
		Location:    location,
		Sublocation: sublocation,
		Path:        path,
	}, nil
}

// List returns the stored scenes for one location.
func (uc *SceneUseCase) List(ctx context.Context, req dto.SceneListRequest) (*dto.SceneListResponse, error) {
	scenes, err := uc.sceneRepo.ListByLocation(ctx, req.Location, req.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.SceneListResponse{
		Scenes: scenes,
		Total:  len(scenes),
	}, nil
}

// Stats aggregates stored scene counts per location.
func (uc *SceneUseCase) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := uc.sceneRepo.CountByLocation(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, s := range stats {
		total += s.Scenes
	}

	return &dto.StatsResponse{
		Locations:   stats,
		TotalScenes: total,
	}, nil
}
