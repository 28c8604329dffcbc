package handlers

import (
	"errors"
	"strconv"

	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/core/services"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing users (Admin only)
// @Summary List users
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	output, err := h.userService.ListUsers(c.Context(), &services.ListUsersInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", output)
}

// Create handles creating a user (Admin only)
// @Summary Create user
// @Description Create a staff account with an admin or pharmacist role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.CreateUser(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			return response.Conflict(c, "Username already taken")
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, "Password does not meet requirements")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid user data")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return response.Created(c, "User created successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// ChangePassword handles changing the authenticated user's password
// @Summary Change password
// @Description Verify the old password and set a new one
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChangePasswordInput true "Password data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
		switch {
		case errors.Is(err, services.ErrOldPasswordWrong):
			return response.BadRequest(c, "Old password is incorrect")
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, "Password does not meet requirements")
		case errors.Is(err, services.ErrUserNotFoundSvc):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Success(c, "Password changed successfully", nil)
}

// Profile handles getting the authenticated user's profile
// @Summary Get profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	user, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFoundSvc) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.Success(c, "Profile retrieved successfully", fiber.Map{
		"user": user,
	})
}
