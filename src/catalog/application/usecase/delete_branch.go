package usecase

import (
	"context"

	"supermercado/src/catalog/domain/port"

	"github.com/google/uuid"
)

// DeleteBranchUseCase caso de uso para eliminar una sucursal
type DeleteBranchUseCase struct {
	branchRepo port.BranchRepository
}

// NewDeleteBranchUseCase crea una nueva instancia del caso de uso
func NewDeleteBranchUseCase(branchRepo port.BranchRepository) *DeleteBranchUseCase {
	return &DeleteBranchUseCase{branchRepo: branchRepo}
}

// Execute elimina la sucursal; entity.ErrBranchNotFound si no existe
func (uc *DeleteBranchUseCase) Execute(ctx context.Context, branchID uuid.UUID) error {
	return uc.branchRepo.Delete(ctx, branchID)
}
