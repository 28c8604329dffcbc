package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/config"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/password"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)
}

func createUser(t *testing.T, db *gorm.DB, username, plaintext string, role domain.Role) *models.User {
	t.Helper()

	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role.String(),
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	createUser(t, db, "admin", "admin123", domain.RoleAdmin)

	resp, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// Access token round-trips through validation
	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	// The refresh token is stored hashed, never in plaintext
	var stored models.RefreshToken
	require.NoError(t, db.First(&stored).Error)
	assert.NotEqual(t, resp.RefreshToken, stored.TokenHash)
	assert.Equal(t, password.HashToken(resp.RefreshToken), stored.TokenHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	createUser(t, db, "admin", "admin123", domain.RoleAdmin)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := createUser(t, db, "former", "secret123", domain.RolePharmacist)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "former", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRefreshToken_Rotation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	createUser(t, db, "pharmacist", "pharma123", domain.RolePharmacist)

	login, err := svc.Login(ctx, &LoginInput{Username: "pharmacist", Password: "pharma123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The rotated-out token is unusable
	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// The new one still works
	_, err = svc.RefreshToken(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshToken_Garbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	createUser(t, db, "admin", "admin123", domain.RoleAdmin)

	login, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogoutAll(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user := createUser(t, db, "admin", "admin123", domain.RoleAdmin)

	first, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, user.ID))

	_, err = svc.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, err = svc.RefreshToken(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}
