package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/password"
)

// User service errors
var (
	ErrUserNotFoundSvc   = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrOldPasswordWrong  = errors.New("old password is incorrect")
	ErrWeakPassword      = errors.New("password does not meet requirements")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents create user input (admin only)
type CreateUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// ListUsersInput represents list users input
type ListUsersInput struct {
	Page  int
	Limit int
}

// ListUsersOutput represents list users output
type ListUsersOutput struct {
	Users      []*models.UserResponse `json:"users"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateUser creates a new user account. A duplicate username leaves
// the existing user untouched.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	if input.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Password: hashed,
		Role:     role.String(),
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers lists all users with pagination
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit

	users, total, err := s.userRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	userResponses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = user.ToResponse()
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListUsersOutput{
		Users:      userResponses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ChangePassword changes the user's own password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFoundSvc
		}
		return err
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}
	if !password.ValidatePassword(input.NewPassword) {
		return ErrWeakPassword
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}
