package usecase

import (
	"context"

	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/port"
)

// ListBranchesUseCase caso de uso para listar todas las sucursales
type ListBranchesUseCase struct {
	branchRepo port.BranchRepository
}

// NewListBranchesUseCase crea una nueva instancia del caso de uso
func NewListBranchesUseCase(branchRepo port.BranchRepository) *ListBranchesUseCase {
	return &ListBranchesUseCase{branchRepo: branchRepo}
}

// Execute retorna todas las sucursales
func (uc *ListBranchesUseCase) Execute(ctx context.Context) ([]*response.BranchResponse, error) {
	branches, err := uc.branchRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toBranchResponses(branches), nil
}
