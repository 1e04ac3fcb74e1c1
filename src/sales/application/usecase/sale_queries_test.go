package usecase

import (
	"context"
	"testing"
	"time"

	catalogEntity "supermercado/src/catalog/domain/entity"
	"supermercado/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSale(t *testing.T) {
	branch := mustBranch(t, "Sucursal Centro", "Av. Siempre Viva 123")
	saleRepo := newFakeSaleRepo()
	sale := seedSale(t, saleRepo, branch.ID)

	uc := NewDeleteSaleUseCase(saleRepo)

	require.NoError(t, uc.Execute(context.Background(), sale.ID))
	assert.Empty(t, saleRepo.sales)

	// Eliminar de nuevo ya no encuentra la venta
	err := uc.Execute(context.Background(), sale.ID)
	assert.ErrorIs(t, err, entity.ErrSaleNotFound)
}

func TestListSales_RecomputesTamperedTotals(t *testing.T) {
	branch := mustBranch(t, "Sucursal Centro", "Av. Siempre Viva 123")
	saleRepo := newFakeSaleRepo()
	sale := seedSale(t, saleRepo, branch.ID)

	// Simular un total almacenado desincronizado de los items
	saleRepo.sales[sale.ID].Total = decimal.NewFromInt(9999)

	uc := NewListSalesUseCase(saleRepo)

	responses, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.True(t, responses[0].Total.Equal(decimal.NewFromInt(30)), "expected 30, got %s", responses[0].Total)
}

func TestListSalesByBranch_FiltersByBranch(t *testing.T) {
	centro := mustBranch(t, "Sucursal Centro", "Av. Siempre Viva 123")
	norte := mustBranch(t, "Sucursal Norte", "Calle Falsa 456")

	saleRepo := newFakeSaleRepo()
	centroSale := seedSale(t, saleRepo, centro.ID)
	seedSale(t, saleRepo, norte.ID)

	uc := NewListSalesByBranchUseCase(saleRepo, newFakeBranchRepo(centro, norte))

	responses, err := uc.Execute(context.Background(), centro.ID)
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, centroSale.ID, responses[0].ID)
	assert.Equal(t, centro.ID, responses[0].BranchID)
}

func TestListSalesByBranch_UnknownBranch(t *testing.T) {
	uc := NewListSalesByBranchUseCase(newFakeSaleRepo(), newFakeBranchRepo())

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, catalogEntity.ErrBranchNotFound)
}

func TestListSalesByDateRange_AlwaysEmpty(t *testing.T) {
	uc := NewListSalesByDateRangeUseCase()

	from, err := time.Parse(dateLayout, "2020-01-01")
	require.NoError(t, err)
	until, err := time.Parse(dateLayout, "2030-12-31")
	require.NoError(t, err)

	responses, err := uc.Execute(context.Background(), from, until)
	require.NoError(t, err)
	assert.Empty(t, responses)
	assert.NotNil(t, responses)
}
