package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/pkg/utils"
	"github.com/geoinsight-service/internal/pkg/validator"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/usecase/dto"
)

// maxSceneSize caps uploaded scene files at 64 MiB.
const maxSceneSize = 64 << 20

// SceneHandler serves scene upload, listing and statistics.
type SceneHandler struct {
	sceneUC *usecase.SceneUseCase
	logger  *zap.Logger
}

func NewSceneHandler(sceneUC *usecase.SceneUseCase, logger *zap.Logger) *SceneHandler {
	return &SceneHandler{
		sceneUC: sceneUC,
		logger:  logger,
	}
}

// Upload godoc
// @Summary Upload a satellite scene
// @Description Stores the file under <location>/<sublocation|general>/ with a unique suffix, records its metadata and publishes an upload event that refreshes the location registry.
// @Tags Scenes
// @Accept multipart/form-data
// @Produce json
// @Param location formData string true "Location name"
// @Param sublocation formData string false "Sub-area name"
// @Param file formData file true "Scene image"
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/scenes [post]
func (h *SceneHandler) Upload(c *fiber.Ctx) error {
	location := c.FormValue("location")
	sublocation := c.FormValue("sublocation")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "file is required"})
	}
	if fileHeader.Size > maxSceneSize {
		return c.Status(400).JSON(fiber.Map{"error": "file too large"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sceneUC.Upload(c.Context(), location, sublocation, fileHeader.Filename, data)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary List stored scenes for a location
// @Tags Scenes
// @Produce json
// @Param location query string true "Location name"
// @Param limit query int false "Maximum number of scenes" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.SceneListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/scenes [get]
func (h *SceneHandler) List(c *fiber.Ctx) error {
	req := dto.SceneListRequest{
		Location: c.Query("location"),
		Limit:    c.QueryInt("limit", 50),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sceneUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// Stats godoc
// @Summary Scene counts per location
// @Tags Scenes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StatsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *SceneHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.sceneUC.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
