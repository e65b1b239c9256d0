package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/infrastructure/exchange"
)

// ExchangeHandler serves the USD->INR rate (protected).
type ExchangeHandler struct {
	client *exchange.Client
}

// NewExchangeHandler builds the handler.
func NewExchangeHandler(client *exchange.Client) *ExchangeHandler {
	return &ExchangeHandler{client: client}
}

// Rate GET /api/exchange-rate
func (h *ExchangeHandler) Rate(c *fiber.Ctx) error {
	rate := h.client.Get(c.UserContext())
	return c.JSON(dto.ExchangeRateResponse{
		INRPerUSD: rate.INRPerUSD,
		Source:    rate.Source,
		FetchedAt: rate.FetchedAt,
	})
}
