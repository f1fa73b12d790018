package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	apperrors "github.com/geoinsight-service/internal/pkg/errors"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/usecase/dto"
)

func TestUpload_StoresInsertsAndPublishes(t *testing.T) {
	store := new(MockSceneStore)
	store.On("Save", mock.Anything, "New Delhi", "Connaught Place", "scene.png", []byte("img")).
		Return("new-delhi/connaught-place/scene-abc12345.png", nil).Once()

	sceneRepo := new(MockSceneRepository)
	sceneRepo.On("Insert", mock.Anything, mock.MatchedBy(func(s *domain.SceneImage) bool {
		return s.Location == "New Delhi" && s.Path == "new-delhi/connaught-place/scene-abc12345.png"
	})).Return(int64(7), nil).Once()

	streamRepo := new(MockStreamRepository)
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamSceneUploads,
		mock.MatchedBy(func(ev domain.SceneUploadEvent) bool {
			return ev.Location == "New Delhi" && ev.Path == "new-delhi/connaught-place/scene-abc12345.png"
		})).Return(nil).Once()

	uc := usecase.NewSceneUseCase(store, sceneRepo, streamRepo, zap.NewNop())
	resp, err := uc.Upload(context.Background(), "New Delhi", "Connaught Place", "scene.png", []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "new-delhi/connaught-place/scene-abc12345.png", resp.Path)
	store.AssertExpectations(t)
	sceneRepo.AssertExpectations(t)
	streamRepo.AssertExpectations(t)
}

func TestUpload_PublishFailureDoesNotFailUpload(t *testing.T) {
	store := new(MockSceneStore)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("mumbai/general/scene-1.png", nil).Once()

	sceneRepo := new(MockSceneRepository)
	sceneRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil).Once()

	streamRepo := new(MockStreamRepository)
	streamRepo.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down")).Once()

	uc := usecase.NewSceneUseCase(store, sceneRepo, streamRepo, zap.NewNop())
	resp, err := uc.Upload(context.Background(), "Mumbai", "", "scene.png", []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestUpload_RejectsEmptyInput(t *testing.T) {
	uc := usecase.NewSceneUseCase(new(MockSceneStore), new(MockSceneRepository), new(MockStreamRepository), zap.NewNop())

	_, err := uc.Upload(context.Background(), "  ", "", "scene.png", []byte("img"))
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)

	_, err = uc.Upload(context.Background(), "Mumbai", "", "scene.png", nil)
	require.Error(t, err)
}

func TestList_ReturnsScenesWithTotal(t *testing.T) {
	sceneRepo := new(MockSceneRepository)
	sceneRepo.On("ListByLocation", mock.Anything, "Pune", 10).Return([]domain.SceneImage{
		{ID: 1, Location: "Pune"},
		{ID: 2, Location: "Pune"},
	}, nil).Once()

	uc := usecase.NewSceneUseCase(new(MockSceneStore), sceneRepo, new(MockStreamRepository), zap.NewNop())
	resp, err := uc.List(context.Background(), dto.SceneListRequest{Location: "Pune", Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Scenes, 2)
}

func TestStats_SumsSceneCounts(t *testing.T) {
	sceneRepo := new(MockSceneRepository)
	sceneRepo.On("CountByLocation", mock.Anything).Return([]domain.LocationStat{
		{Location: "Pune", Scenes: 3},
		{Location: "Mumbai", Scenes: 5},
	}, nil).Once()

	uc := usecase.NewSceneUseCase(new(MockSceneStore), sceneRepo, new(MockStreamRepository), zap.NewNop())
	resp, err := uc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, resp.TotalScenes)
	assert.Len(t, resp.Locations, 2)
}
