package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/password"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{
		Username: "newstaff",
		Password: "secret123",
		Role:     "pharmacist",
	})
	require.NoError(t, err)

	assert.Equal(t, "newstaff", user.Username)
	assert.Equal(t, "pharmacist", user.Role)
	assert.True(t, user.IsActive)

	// Stored password is a hash, not the plaintext
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, password.Verify("secret123", user.Password))
}

func TestCreateUser_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserInput{Username: "dup", Password: "secret123", Role: "admin"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &CreateUserInput{Username: "dup", Password: "other1234", Role: "pharmacist"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_WeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{Username: "weak", Password: "short", Role: "admin"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{Username: "odd", Password: "secret123", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	createUser(t, db, "admin", "admin123", domain.RoleAdmin)
	createUser(t, db, "pharmacist", "pharma123", domain.RolePharmacist)
	createUser(t, db, "zed", "secret123", domain.RolePharmacist)

	output, err := svc.ListUsers(ctx, &ListUsersInput{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), output.Total)
	assert.Len(t, output.Users, 2)
	assert.Equal(t, 2, output.TotalPages)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	user := createUser(t, db, "staff", "oldpass123", domain.RolePharmacist)

	err := svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
		OldPassword: "oldpass123",
		NewPassword: "newpass456",
	})
	require.NoError(t, err)

	// Old password no longer works, new one does
	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
		OldPassword: "oldpass123",
		NewPassword: "whatever99",
	})
	assert.ErrorIs(t, err, ErrOldPasswordWrong)

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
		OldPassword: "newpass456",
		NewPassword: "finalpass7",
	})
	assert.NoError(t, err)
}

func TestChangePassword_Weak(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user := createUser(t, db, "staff", "oldpass123", domain.RolePharmacist)

	err := svc.ChangePassword(context.Background(), user.ID, &ChangePasswordInput{
		OldPassword: "oldpass123",
		NewPassword: "tiny",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestGetUserByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.GetUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFoundSvc)
}
