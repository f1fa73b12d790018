package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/pkg/utils"
	"github.com/geoinsight-service/internal/pkg/validator"
	"github.com/geoinsight-service/internal/usecase"
	"github.com/geoinsight-service/internal/usecase/dto"
)

// LocationHandler serves resolution and registry requests.
type LocationHandler struct {
	resolutionUC *usecase.ResolutionUseCase
	registry     *usecase.LocationRegistry
	logger       *zap.Logger
}

func NewLocationHandler(
	resolutionUC *usecase.ResolutionUseCase,
	registry *usecase.LocationRegistry,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		resolutionUC: resolutionUC,
		registry:     registry,
		logger:       logger,
	}
}

// Resolve godoc
// @Summary Resolve free text to a known location
// @Description Extracts candidates from the text (named entities, then n-grams, then the whole text) and fuzzy-matches them against the location registry. An unresolved query returns a null matched_name with confidence 0, not an error.
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.ResolveRequest true "Free-form query text"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/resolve [post]
func (h *LocationHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resolved := h.resolutionUC.Resolve(c.Context(), req.Text)
	return utils.SendSuccess(c, dto.ConvertResolved(resolved), nil)
}

// ListLocations godoc
// @Summary List known locations
// @Description Returns the canonical names in the location registry, flagging names that are targets of the static alias table.
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegistryResponse}
// @Router /api/v1/locations [get]
func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	entries := h.registry.Entries(c.Context())

	return utils.SendSuccess(c, dto.RegistryResponse{
		Locations: entries,
		Total:     len(entries),
	}, &utils.Meta{Total: len(entries)})
}

// RefreshRegistry godoc
// @Summary Force a registry refresh
// @Description Rebuilds the location registry from the scene store immediately instead of waiting for the next upload event.
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegistryResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/locations/refresh [post]
func (h *LocationHandler) RefreshRegistry(c *fiber.Ctx) error {
	if err := h.registry.Refresh(c.Context()); err != nil {
		return utils.SendError(c, err)
	}

	entries := h.registry.Entries(c.Context())
	return utils.SendSuccess(c, dto.RegistryResponse{
		Locations: entries,
		Total:     len(entries),
	}, nil)
}
