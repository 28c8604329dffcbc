package handlers

import (
	"errors"

	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/pagination"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SaleHandler handles sale ledger endpoints
type SaleHandler struct {
	inventoryService *services.InventoryService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(inventoryService *services.InventoryService) *SaleHandler {
	return &SaleHandler{inventoryService: inventoryService}
}

// RecordSaleRequest represents record sale request
type RecordSaleRequest struct {
	DrugID   uint `json:"drug_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1"`
}

// Record handles recording a sale
// @Summary Record sale
// @Description Decrement stock and append a sale with a snapshotted unit price
// @Tags Sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RecordSaleRequest true "Sale data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var req RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// The cashier is never client-supplied, always the authenticated user
	staffName, _ := c.Locals("username").(string)

	sale, err := h.inventoryService.RecordSale(c.Context(), &services.RecordSaleInput{
		DrugID:    req.DrugID,
		Quantity:  req.Quantity,
		StaffName: staffName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDrugNotFound):
			return response.NotFound(c, "Drug not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			return response.Conflict(c, "Insufficient stock")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid sale data")
		default:
			return response.InternalServerError(c, "Failed to record sale")
		}
	}

	return response.Created(c, "Sale recorded successfully", fiber.Map{
		"sale": sale,
	})
}

// List handles listing sales
// @Summary List sales
// @Description List sale records, newest first
// @Tags Sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	sales, total, err := h.inventoryService.ListSales(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list sales")
	}

	return response.Success(c, "Sales retrieved successfully", pagination.NewResponse(sales, params, total))
}
