package usecase

import (
	"context"

	"supermercado/src/sales/domain/port"

	"github.com/google/uuid"
)

// DeleteSaleUseCase caso de uso para eliminar una venta con sus items
type DeleteSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewDeleteSaleUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleUseCase(saleRepo port.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{saleRepo: saleRepo}
}

// Execute elimina la venta y, en cascada, todos sus items en una sola
// transacción. entity.ErrSaleNotFound si la venta no existe.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) error {
	return uc.saleRepo.Delete(ctx, saleID)
}
