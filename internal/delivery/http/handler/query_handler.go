package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/pkg/utils"
	"github.com/geoinsight-service/internal/pkg/validator"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/usecase/dto"
)

// QueryHandler serves the full free-text analysis chain.
type QueryHandler struct {
	queryUC *usecase.QueryUseCase
	logger  *zap.Logger
}

func NewQueryHandler(queryUC *usecase.QueryUseCase, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryUC: queryUC,
		logger:  logger,
	}
}

// Query godoc
// @Summary Answer a free-text question about a place
// @Description Resolves the location named in the query, classifies the question, derives a city-sized bounding box, runs the AOI pipeline and generates insights. Stages degrade independently: an unresolved location still returns the classification.
// @Tags Query
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Free-form question"
// @Success 200 {object} utils.SuccessResponse{data=dto.QueryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/query [post]
func (h *QueryHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.queryUC.Query(c.Context(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
