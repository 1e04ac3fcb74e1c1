package usecase

import (
	"context"
	"fmt"

	"supermercado/src/catalog/application/request"
	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/port"

	"github.com/google/uuid"
)

// UpdateBranchUseCase caso de uso para reemplazar los datos de una sucursal
type UpdateBranchUseCase struct {
	branchRepo port.BranchRepository
}

// NewUpdateBranchUseCase crea una nueva instancia del caso de uso
func NewUpdateBranchUseCase(branchRepo port.BranchRepository) *UpdateBranchUseCase {
	return &UpdateBranchUseCase{branchRepo: branchRepo}
}

// Execute actualiza la sucursal; entity.ErrBranchNotFound si no existe
func (uc *UpdateBranchUseCase) Execute(ctx context.Context, branchID uuid.UUID, req *request.BranchRequest) (*response.BranchResponse, error) {
	branch, err := uc.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if err := branch.Update(req.Name, req.Address); err != nil {
		return nil, err
	}

	if err := uc.branchRepo.Update(ctx, branch); err != nil {
		return nil, fmt.Errorf("error updating branch: %w", err)
	}

	return toBranchResponse(branch), nil
}
