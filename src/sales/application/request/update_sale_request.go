package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateSaleRequest request de actualización parcial de una venta.
// Cada campo es independiente: solo los presentes se aplican, los ausentes
// dejan el valor existente intacto. Los items no se pueden modificar después
// de creada la venta.
type UpdateSaleRequest struct {
	Date     *string          `json:"date,omitempty"`
	BranchID *uuid.UUID       `json:"branch_id,omitempty"`
	Status   *string          `json:"status,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`
}
