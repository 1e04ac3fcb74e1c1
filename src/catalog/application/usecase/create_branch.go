package usecase

import (
	"context"
	"fmt"

	"supermercado/src/catalog/application/request"
	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/entity"
	"supermercado/src/catalog/domain/port"
)

// CreateBranchUseCase caso de uso para dar de alta una sucursal
type CreateBranchUseCase struct {
	branchRepo port.BranchRepository
}

// NewCreateBranchUseCase crea una nueva instancia del caso de uso
func NewCreateBranchUseCase(branchRepo port.BranchRepository) *CreateBranchUseCase {
	return &CreateBranchUseCase{branchRepo: branchRepo}
}

// Execute crea la sucursal
func (uc *CreateBranchUseCase) Execute(ctx context.Context, req *request.BranchRequest) (*response.BranchResponse, error) {
	branch, err := entity.NewBranch(req.Name, req.Address)
	if err != nil {
		return nil, err
	}

	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return nil, fmt.Errorf("error saving branch: %w", err)
	}

	return toBranchResponse(branch), nil
}
