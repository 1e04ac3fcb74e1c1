package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta (Aggregate Root). La venta es dueña de su lista
// ordenada de items por valor: siempre se carga y se guarda como una unidad.
type Sale struct {
	ID       uuid.UUID       `json:"id"`
	Date     time.Time       `json:"date"`
	Status   SaleStatus      `json:"status"`
	BranchID uuid.UUID       `json:"branch_id"`
	Total    decimal.Decimal `json:"total"`
	Items    []SaleItem      `json:"items"`
}

// NewSale crea una venta con sus items. Una venta sin items es inválida.
// Si el caller manda un total se almacena tal cual, pero nunca se confía en
// él: toda vista materializada lo recalcula desde los items.
func NewSale(date time.Time, status SaleStatus, branchID uuid.UUID, items []SaleItem, total *decimal.Decimal) (*Sale, error) {
	if branchID == uuid.Nil {
		return nil, ErrBranchRequired
	}
	if len(items) == 0 {
		return nil, ErrSaleMustHaveItems
	}

	storedTotal := Total(items)
	if total != nil {
		storedTotal = *total
	}

	return &Sale{
		ID:       uuid.New(),
		Date:     date,
		Status:   status,
		BranchID: branchID,
		Total:    storedTotal,
		Items:    items,
	}, nil
}

// TotalItems retorna el número de líneas de la venta
func (s *Sale) TotalItems() int {
	return len(s.Items)
}
