package port

import (
	"context"

	"supermercado/src/sales/domain/entity"

	"github.com/google/uuid"
)

// SaleRepository define el contrato para persistir ventas.
// El aggregate se guarda y se carga completo: los items siempre viajan con
// su venta y la atomicidad (venta + items, o nada) la garantiza el storage
// con una transacción por operación.
type SaleRepository interface {
	// Save es un upsert: inserta la venta con todos sus items en una sola
	// transacción, o actualiza los campos propios de la venta si ya existe.
	// Un update nunca toca los items.
	Save(ctx context.Context, sale *entity.Sale) error

	// FindByID carga la venta con sus items; entity.ErrSaleNotFound si no existe.
	FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)

	// FindByBranch retorna todas las ventas que referencian la sucursal.
	FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Sale, error)

	// FindAll retorna todas las ventas con sus items.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// Delete elimina la venta y todos sus items en una sola transacción;
	// entity.ErrSaleNotFound si no existe.
	Delete(ctx context.Context, saleID uuid.UUID) error
}
