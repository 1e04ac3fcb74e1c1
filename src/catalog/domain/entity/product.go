package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Las líneas de venta lo
// referencian pero nunca son dueñas de él: el producto se crea, se modifica
// y se elimina con independencia de las ventas.
type Product struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// NewProduct crea un producto validando sus atributos.
// El nombre es único en el catálogo (la unicidad la garantiza el storage).
func NewProduct(name, category string, price decimal.Decimal, stock int) (*Product, error) {
	if err := validateProduct(name, price, stock); err != nil {
		return nil, err
	}

	return &Product{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Category: category,
		Price:    price,
		Stock:    stock,
	}, nil
}

// Update reemplaza los atributos mutables del producto
func (p *Product) Update(name, category string, price decimal.Decimal, stock int) error {
	if err := validateProduct(name, price, stock); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Category = category
	p.Price = price
	p.Stock = stock
	return nil
}

func validateProduct(name string, price decimal.Decimal, stock int) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 3 || len(trimmed) > 100 {
		return ErrInvalidProductName
	}
	if price.LessThan(decimal.Zero) {
		return ErrInvalidProductPrice
	}
	if stock < 0 {
		return ErrInvalidProductStock
	}
	return nil
}
