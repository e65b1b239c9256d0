package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/application/usecase"
)

// OverviewHandler serves the dashboard summary (protected).
type OverviewHandler struct {
	uc *usecase.OverviewUseCase
}

// NewOverviewHandler builds the handler.
func NewOverviewHandler(uc *usecase.OverviewUseCase) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// Summary GET /api/overview
func (h *OverviewHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
