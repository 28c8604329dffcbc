package handlers

import (
	"errors"
	"time"

	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Stock handles the stock report
// @Summary Stock report
// @Description Full inventory snapshot ordered by drug name
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	report, err := h.reportService.Stock(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build stock report")
	}

	return response.Success(c, "Stock report generated", report)
}

// Expiry handles the expiry report
// @Summary Expiry report
// @Description Expired drugs and drugs expiring within the horizon
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/expiry [get]
func (h *ReportHandler) Expiry(c *fiber.Ctx) error {
	report, err := h.reportService.Expiry(c.Context(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Failed to build expiry report")
	}

	return response.Success(c, "Expiry report generated", report)
}

// Sales handles the sales report
// @Summary Sales report
// @Description Sales for a daily, weekly or monthly window with totals
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param period query string false "daily, weekly or monthly" default(daily)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	period := c.Query("period", services.PeriodDaily)

	report, err := h.reportService.Sales(c.Context(), period, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrUnknownPeriod) {
			return response.BadRequest(c, "Unknown report period")
		}
		return response.InternalServerError(c, "Failed to build sales report")
	}

	return response.Success(c, "Sales report generated", report)
}
