package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/core/domain"
)

func TestSupplierCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repositories.NewSupplierRepository(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, &SupplierInput{
		Name:          "MedSupply Co",
		ContactPerson: "J. Doe",
		Phone:         "555-0101",
		Email:         "orders@medsupply.example",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "MedSupply Co", got.Name)

	updated, err := svc.Update(ctx, created.ID, &SupplierInput{
		Name:  "MedSupply Co Ltd",
		Phone: "555-0202",
	})
	require.NoError(t, err)
	assert.Equal(t, "MedSupply Co Ltd", updated.Name)
	assert.Equal(t, "555-0202", updated.Phone)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestSupplier_InvalidInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repositories.NewSupplierRepository(db))

	_, err := svc.Create(context.Background(), &SupplierInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplier_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repositories.NewSupplierRepository(db))
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)

	err = svc.Delete(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
