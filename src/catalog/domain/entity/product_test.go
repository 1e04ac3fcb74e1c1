package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("  Pan  ", "Panadería", decimal.NewFromInt(10), 50)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Pan", product.Name)
	assert.Equal(t, "Panadería", product.Category)
	assert.Equal(t, 50, product.Stock)
}

func TestNewProduct_NameBoundaries(t *testing.T) {
	price := decimal.NewFromInt(10)

	_, err := NewProduct("Pa", "Panadería", price, 0)
	assert.ErrorIs(t, err, ErrInvalidProductName)

	_, err = NewProduct("   Pa   ", "Panadería", price, 0)
	assert.ErrorIs(t, err, ErrInvalidProductName)

	_, err = NewProduct(strings.Repeat("a", 101), "Panadería", price, 0)
	assert.ErrorIs(t, err, ErrInvalidProductName)

	_, err = NewProduct(strings.Repeat("a", 100), "Panadería", price, 0)
	assert.NoError(t, err)

	_, err = NewProduct("Pan", "Panadería", price, 0)
	assert.NoError(t, err)
}

func TestNewProduct_InvalidPriceAndStock(t *testing.T) {
	_, err := NewProduct("Pan", "Panadería", decimal.NewFromInt(-1), 0)
	assert.ErrorIs(t, err, ErrInvalidProductPrice)

	_, err = NewProduct("Pan", "Panadería", decimal.Zero, 0)
	assert.NoError(t, err)

	_, err = NewProduct("Pan", "Panadería", decimal.NewFromInt(10), -1)
	assert.ErrorIs(t, err, ErrInvalidProductStock)
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("Pan", "Panadería", decimal.NewFromInt(10), 50)
	require.NoError(t, err)

	require.NoError(t, product.Update("Pan Integral", "Panadería", decimal.NewFromInt(12), 40))
	assert.Equal(t, "Pan Integral", product.Name)
	assert.Equal(t, 40, product.Stock)

	// Un update inválido no toca el producto
	err = product.Update("Pa", "Panadería", decimal.NewFromInt(12), 40)
	assert.ErrorIs(t, err, ErrInvalidProductName)
	assert.Equal(t, "Pan Integral", product.Name)
}

func TestNewBranch(t *testing.T) {
	branch, err := NewBranch("  Sucursal Centro  ", "  Av. Siempre Viva 123  ")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, branch.ID)
	assert.Equal(t, "Sucursal Centro", branch.Name)
	assert.Equal(t, "Av. Siempre Viva 123", branch.Address)
}

func TestNewBranch_Validations(t *testing.T) {
	_, err := NewBranch("", "Av. Siempre Viva 123")
	assert.ErrorIs(t, err, ErrInvalidBranchName)

	_, err = NewBranch("   ", "Av. Siempre Viva 123")
	assert.ErrorIs(t, err, ErrInvalidBranchName)

	_, err = NewBranch(strings.Repeat("a", 101), "Av. Siempre Viva 123")
	assert.ErrorIs(t, err, ErrInvalidBranchName)

	_, err = NewBranch("Sucursal Centro", "")
	assert.ErrorIs(t, err, ErrInvalidBranchAddress)

	_, err = NewBranch("Sucursal Centro", strings.Repeat("a", 201))
	assert.ErrorIs(t, err, ErrInvalidBranchAddress)

	_, err = NewBranch(strings.Repeat("a", 100), strings.Repeat("b", 200))
	assert.NoError(t, err)
}
