package handlers

import (
	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the dashboard endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles the dashboard summary
// @Summary Dashboard
// @Description Inventory counts, alert counts, today's sales and recent activity
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	data, err := h.dashboardService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", data)
}
