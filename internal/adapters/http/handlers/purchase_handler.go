package handlers

import (
	"errors"

	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/pagination"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles purchase ledger endpoints
type PurchaseHandler struct {
	inventoryService *services.InventoryService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(inventoryService *services.InventoryService) *PurchaseHandler {
	return &PurchaseHandler{inventoryService: inventoryService}
}

// RecordPurchaseRequest represents record purchase request
type RecordPurchaseRequest struct {
	DrugID       uint    `json:"drug_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	CostPrice    float64 `json:"cost_price" validate:"required,gt=0"`
	SupplierName string  `json:"supplier_name"`
	BatchNo      string  `json:"batch_no"`
}

// Record handles recording a purchase (Admin only)
// @Summary Record purchase
// @Description Increment stock and append a purchase; the drug takes the new cost price and batch number
// @Tags Purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RecordPurchaseRequest true "Purchase data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /purchases [post]
func (h *PurchaseHandler) Record(c *fiber.Ctx) error {
	var req RecordPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	purchase, err := h.inventoryService.RecordPurchase(c.Context(), &services.RecordPurchaseInput{
		DrugID:       req.DrugID,
		Quantity:     req.Quantity,
		CostPrice:    req.CostPrice,
		SupplierName: req.SupplierName,
		BatchNo:      req.BatchNo,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDrugNotFound):
			return response.NotFound(c, "Drug not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid purchase data")
		default:
			return response.InternalServerError(c, "Failed to record purchase")
		}
	}

	return response.Created(c, "Purchase recorded successfully", fiber.Map{
		"purchase": purchase,
	})
}

// List handles listing purchases (Admin only)
// @Summary List purchases
// @Description List purchase records, newest first
// @Tags Purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	purchases, total, err := h.inventoryService.ListPurchases(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list purchases")
	}

	return response.Success(c, "Purchases retrieved successfully", pagination.NewResponse(purchases, params, total))
}
