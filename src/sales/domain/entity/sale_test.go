package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleItem(t *testing.T) {
	item, err := NewSaleItem(uuid.New(), "Pan", 3, decimal.NewFromInt(10))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, "Pan", item.ProductName)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(30)))
}

func TestNewSaleItem_Validations(t *testing.T) {
	productID := uuid.New()
	price := decimal.NewFromInt(10)

	_, err := NewSaleItem(uuid.Nil, "Pan", 1, price)
	assert.ErrorIs(t, err, ErrProductRequired)

	_, err = NewSaleItem(productID, "", 1, price)
	assert.ErrorIs(t, err, ErrProductNameRequired)

	_, err = NewSaleItem(productID, "Pan", 0, price)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewSaleItem(productID, "Pan", -2, price)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewSaleItem(productID, "Pan", 1, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestNewSale(t *testing.T) {
	branchID := uuid.New()
	items := []SaleItem{mustItem(t, "Pan", 3, "10")}

	sale, err := NewSale(saleDate(t), SaleStatusRegistered, branchID, items, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sale.ID)
	assert.Equal(t, branchID, sale.BranchID)
	assert.Equal(t, SaleStatusRegistered, sale.Status)
	assert.Equal(t, 1, sale.TotalItems())
	// Sin total del caller, se almacena el total calculado
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(30)))
}

func TestNewSale_StoresCallerTotal(t *testing.T) {
	items := []SaleItem{mustItem(t, "Pan", 3, "10")}
	callerTotal := decimal.NewFromInt(999)

	sale, err := NewSale(saleDate(t), SaleStatusRegistered, uuid.New(), items, &callerTotal)
	require.NoError(t, err)

	// El total del caller se almacena tal cual; la vista materializada lo
	// reemplaza en cada lectura
	assert.True(t, sale.Total.Equal(callerTotal))
	assert.True(t, Total(sale.Items).Equal(decimal.NewFromInt(30)))
}

func TestNewSale_RequiresBranch(t *testing.T) {
	items := []SaleItem{mustItem(t, "Pan", 1, "10")}

	_, err := NewSale(saleDate(t), SaleStatusRegistered, uuid.Nil, items, nil)
	assert.ErrorIs(t, err, ErrBranchRequired)
}

func TestNewSale_RequiresItems(t *testing.T) {
	_, err := NewSale(saleDate(t), SaleStatusRegistered, uuid.New(), nil, nil)
	assert.ErrorIs(t, err, ErrSaleMustHaveItems)

	_, err = NewSale(saleDate(t), SaleStatusRegistered, uuid.New(), []SaleItem{}, nil)
	assert.ErrorIs(t, err, ErrSaleMustHaveItems)
}

func TestParseSaleStatus(t *testing.T) {
	status, err := ParseSaleStatus("REGISTERED")
	require.NoError(t, err)
	assert.Equal(t, SaleStatusRegistered, status)

	status, err = ParseSaleStatus("VOIDED")
	require.NoError(t, err)
	assert.Equal(t, SaleStatusVoided, status)

	_, err = ParseSaleStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseSaleStatus("registered")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func saleDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)
	return date
}
