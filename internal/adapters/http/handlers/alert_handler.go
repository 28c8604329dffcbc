package handlers

import (
	"time"

	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AlertHandler handles alert endpoints
type AlertHandler struct {
	alertService *services.AlertService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// Counts handles the alert badge counts
// @Summary Alert counts
// @Description Counts of low stock, expiring soon and expired drugs
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /alerts [get]
func (h *AlertHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.alertService.Counts(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute alerts")
	}

	return response.Success(c, "Alerts retrieved successfully", fiber.Map{
		"alerts":              counts,
		"low_stock_threshold": h.alertService.LowStockThreshold(),
		"expiry_horizon_days": h.alertService.ExpiryHorizonDays(),
	})
}
