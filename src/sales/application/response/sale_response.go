package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse representa una línea en la vista materializada de una venta
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse es la vista materializada de una venta: Total y cada Subtotal
// se recalculan en cada lectura, nunca se devuelven tal cual del storage.
type SaleResponse struct {
	ID       uuid.UUID          `json:"id"`
	Date     string             `json:"date"`
	Status   string             `json:"status"`
	BranchID uuid.UUID          `json:"branch_id"`
	Items    []SaleItemResponse `json:"items"`
	Total    decimal.Decimal    `json:"total"`
}
