package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("pharmacist")
	require.NoError(t, err)
	assert.Equal(t, RolePharmacist, role)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoleIsFlat(t *testing.T) {
	assert.True(t, RoleAdmin.Is(RoleAdmin))
	assert.True(t, RolePharmacist.Is(RolePharmacist))

	// No hierarchy in either direction
	assert.False(t, RoleAdmin.Is(RolePharmacist))
	assert.False(t, RolePharmacist.Is(RoleAdmin))
}
