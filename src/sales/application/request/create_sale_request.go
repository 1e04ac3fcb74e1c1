package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa una línea solicitada dentro de una venta.
// El precio unitario del request es el que queda registrado en la venta.
type SaleItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateSaleRequest request para registrar una venta.
// BranchID e Items se validan en el caso de uso, no en el binding, para que
// su ausencia produzca los errores de dominio y no un error genérico de JSON.
type CreateSaleRequest struct {
	Date     string            `json:"date" binding:"required"`
	Status   string            `json:"status" binding:"required"`
	BranchID uuid.UUID         `json:"branch_id"`
	Items    []SaleItemRequest `json:"items"`

	// Total es opcional: se acepta y se almacena, pero la respuesta siempre
	// devuelve el total recalculado desde los items.
	Total *decimal.Decimal `json:"total,omitempty"`
}
