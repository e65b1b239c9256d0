package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain/access"
)

// NavigationHandler serves the role-filtered navigation and page resolution.
// Both lean on access.Allowed, so the menu and deep links can never disagree.
type NavigationHandler struct{}

// NewNavigationHandler builds the handler.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Navigation GET /api/navigation
func (h *NavigationHandler) Navigation(c *fiber.Ctx) error {
	entries := access.NavigationFor(GetRole(c))
	items := make([]dto.PageEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.PageEntry{ID: e.ID, Label: e.Label})
	}
	return c.JSON(dto.NavigationResponse{Items: items})
}

// Resolve GET /api/navigation/resolve?page=...
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	page, denied := access.Resolve(c.Query("page"), GetRole(c))
	return c.JSON(dto.ResolvePageResponse{Page: page, Denied: denied})
}
