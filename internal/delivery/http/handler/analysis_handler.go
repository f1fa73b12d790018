package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/pkg/utils"
	"github.com/geoinsight-service/internal/pkg/validator"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/usecase/dto"
)

// AnalysisHandler serves bounding-box metrics requests.
type AnalysisHandler struct {
	analysisUC usecase.Analyzer
	logger     *zap.Logger
}

func NewAnalysisHandler(analysisUC usecase.Analyzer, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// Analyze godoc
// @Summary Compute infrastructure metrics for a bounding box
// @Description Runs the AOI pipeline: queries roads, buildings and amenities inside the box, clips them to the area and returns density metrics plus the composite socio-economic score. An empty area yields all-zero metrics.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Bounding box (WGS84 degrees)"
// @Success 200 {object} utils.SuccessResponse{data=dto.MetricsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	bbox := domain.BoundingBox{
		MinLon: req.MinLon,
		MinLat: req.MinLat,
		MaxLon: req.MaxLon,
		MaxLat: req.MaxLat,
	}

	metrics, err := h.analysisUC.Analyze(c.Context(), bbox)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertMetrics(metrics), nil)
}
