package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa una línea dentro de una venta (Entity dentro del Aggregate).
// Se crea atómicamente con su venta y es inmutable después: no tiene ciclo de
// vida propio ni referencia de vuelta al aggregate.
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewSaleItem crea una línea de venta resolviendo el subtotal.
// El precio unitario es el que llega en el request al momento de la venta:
// es un snapshot, independiente de cambios posteriores del producto.
func NewSaleItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	if productID == uuid.Nil {
		return nil, ErrProductRequired
	}
	if productName == "" {
		return nil, ErrProductNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &SaleItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    Subtotal(quantity, unitPrice),
	}, nil
}
