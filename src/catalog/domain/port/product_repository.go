package port

import (
	"context"

	"supermercado/src/catalog/domain/entity"
	"supermercado/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// ProductRepository define los métodos para persistir y resolver productos
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retorna entity.ErrProductNotFound si el producto no existe
	FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// FindByName resuelve un producto por nombre exacto. Es la búsqueda que
	// usa la construcción de ventas; entity.ErrProductNotFound si no existe.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	FindAll(ctx context.Context) ([]*entity.Product, error)

	// SearchByCriteria busca productos según filtros/orden/paginación
	SearchByCriteria(ctx context.Context, crit criteria.Criteria) ([]*entity.Product, error)

	// Delete retorna entity.ErrProductNotFound si el producto no existe
	Delete(ctx context.Context, productID uuid.UUID) error
}
