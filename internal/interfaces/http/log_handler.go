package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/application/usecase"
)

// LogHandler serves the inventory audit trail (protected, admin only).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler builds the handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List GET /api/logs
func (h *LogHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
