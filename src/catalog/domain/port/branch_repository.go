package port

import (
	"context"

	"supermercado/src/catalog/domain/entity"

	"github.com/google/uuid"
)

// BranchRepository define los métodos para persistir sucursales
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	Update(ctx context.Context, branch *entity.Branch) error

	// FindByID retorna entity.ErrBranchNotFound si la sucursal no existe
	FindByID(ctx context.Context, branchID uuid.UUID) (*entity.Branch, error)

	FindAll(ctx context.Context) ([]*entity.Branch, error)

	// Delete retorna entity.ErrBranchNotFound si la sucursal no existe
	Delete(ctx context.Context, branchID uuid.UUID) error
}
