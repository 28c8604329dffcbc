package handlers

import (
	"errors"
	"strconv"

	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles supplier directory endpoints
type SupplierHandler struct {
	supplierService *services.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// List handles listing suppliers
// @Summary List suppliers
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.supplierService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", fiber.Map{
		"suppliers": suppliers,
	})
}

// GetByID handles getting a single supplier
// @Summary Get supplier by ID
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	supplier, err := h.supplierService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to get supplier")
	}

	return response.Success(c, "Supplier retrieved successfully", fiber.Map{
		"supplier": supplier,
	})
}

// Create handles creating a supplier (Admin only)
// @Summary Create supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SupplierInput true "Supplier data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var input services.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supplier, err := h.supplierService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid supplier data")
		}
		return response.InternalServerError(c, "Failed to create supplier")
	}

	return response.Created(c, "Supplier added successfully", fiber.Map{
		"supplier": supplier,
	})
}

// Update handles updating a supplier (Admin only)
// @Summary Update supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Param body body services.SupplierInput true "Supplier data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	var input services.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supplier, err := h.supplierService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSupplierNotFound):
			return response.NotFound(c, "Supplier not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid supplier data")
		default:
			return response.InternalServerError(c, "Failed to update supplier")
		}
	}

	return response.Success(c, "Supplier updated successfully", fiber.Map{
		"supplier": supplier,
	})
}

// Delete handles deleting a supplier (Admin only)
// @Summary Delete supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	if err := h.supplierService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to delete supplier")
	}

	return response.Success(c, "Supplier deleted successfully", nil)
}
