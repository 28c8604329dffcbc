package handlers

import (
	"errors"
	"strconv"

	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DrugHandler handles drug catalog endpoints
type DrugHandler struct {
	drugService *services.DrugService
}

// NewDrugHandler creates a new drug handler
func NewDrugHandler(drugService *services.DrugService) *DrugHandler {
	return &DrugHandler{drugService: drugService}
}

// List handles listing drugs with filters
// @Summary List drugs
// @Description List drugs filtered by search text, category, expiry and stock status
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name search"
// @Param category query string false "Category"
// @Param expiry_filter query string false "expired or expiring_soon"
// @Param stock_filter query string false "low_stock"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /drugs [get]
func (h *DrugHandler) List(c *fiber.Ctx) error {
	input := &services.ListDrugsInput{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		ExpiryFilter: c.Query("expiry_filter"),
		StockFilter:  c.Query("stock_filter"),
	}

	drugs, err := h.drugService.List(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list drugs")
	}

	return response.Success(c, "Drugs retrieved successfully", fiber.Map{
		"drugs": drugs,
	})
}

// Categories handles listing distinct drug categories
// @Summary List drug categories
// @Description Get distinct category names for filter dropdowns
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /drugs/categories [get]
func (h *DrugHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.drugService.Categories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}

	return response.Success(c, "Categories retrieved successfully", fiber.Map{
		"categories": categories,
	})
}

// Search handles quick drug lookup by name fragment
// @Summary Search drugs
// @Description Find drugs by name fragment, returning at most 10 results
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name fragment"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} response.Response
// @Router /drugs/search [get]
func (h *DrugHandler) Search(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	results, err := h.drugService.Search(c.Context(), c.Query("q"), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to search drugs")
	}

	return response.Success(c, "Search completed", fiber.Map{
		"results": results,
	})
}

// Sellable handles listing drugs with stock on hand
// @Summary List sellable drugs
// @Description List drugs with quantity above zero
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /drugs/sellable [get]
func (h *DrugHandler) Sellable(c *fiber.Ctx) error {
	drugs, err := h.drugService.ListSellable(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list drugs")
	}

	return response.Success(c, "Drugs retrieved successfully", fiber.Map{
		"drugs": drugs,
	})
}

// GetByID handles getting a single drug
// @Summary Get drug by ID
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drug ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /drugs/{id} [get]
func (h *DrugHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid drug ID")
	}

	drug, err := h.drugService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrDrugNotFound) {
			return response.NotFound(c, "Drug not found")
		}
		return response.InternalServerError(c, "Failed to get drug")
	}

	return response.Success(c, "Drug retrieved successfully", fiber.Map{
		"drug": drug,
	})
}

// Create handles creating a drug (Admin only)
// @Summary Create drug
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DrugInput true "Drug data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /drugs [post]
func (h *DrugHandler) Create(c *fiber.Ctx) error {
	var input services.DrugInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	drug, err := h.drugService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid drug data")
		}
		return response.InternalServerError(c, "Failed to create drug")
	}

	return response.Created(c, "Drug added successfully", fiber.Map{
		"drug": drug,
	})
}

// Update handles updating a drug (Admin only)
// @Summary Update drug
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drug ID"
// @Param body body services.DrugInput true "Drug data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /drugs/{id} [put]
func (h *DrugHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid drug ID")
	}

	var input services.DrugInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	drug, err := h.drugService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDrugNotFound):
			return response.NotFound(c, "Drug not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid drug data")
		default:
			return response.InternalServerError(c, "Failed to update drug")
		}
	}

	return response.Success(c, "Drug updated successfully", fiber.Map{
		"drug": drug,
	})
}

// Delete handles deleting a drug (Admin only)
// @Summary Delete drug
// @Description Delete a drug without sale or purchase history
// @Tags Drugs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drug ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /drugs/{id} [delete]
func (h *DrugHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid drug ID")
	}

	if err := h.drugService.Delete(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrDrugNotFound):
			return response.NotFound(c, "Drug not found")
		case errors.Is(err, domain.ErrDrugInUse):
			return response.Conflict(c, "Drug has sale or purchase records and cannot be deleted")
		default:
			return response.InternalServerError(c, "Failed to delete drug")
		}
	}

	return response.Success(c, "Drug deleted successfully", nil)
}
