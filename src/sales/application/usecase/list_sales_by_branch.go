package usecase

import (
	"context"

	catalogPort "supermercado/src/catalog/domain/port"
	"supermercado/src/sales/application/response"
	"supermercado/src/sales/domain/port"

	"github.com/google/uuid"
)

// ListSalesByBranchUseCase caso de uso para listar las ventas de una sucursal
type ListSalesByBranchUseCase struct {
	saleRepo   port.SaleRepository
	branchRepo catalogPort.BranchRepository
}

// NewListSalesByBranchUseCase crea una nueva instancia del caso de uso
func NewListSalesByBranchUseCase(saleRepo port.SaleRepository, branchRepo catalogPort.BranchRepository) *ListSalesByBranchUseCase {
	return &ListSalesByBranchUseCase{
		saleRepo:   saleRepo,
		branchRepo: branchRepo,
	}
}

// Execute valida que la sucursal exista y retorna exactamente las ventas que
// la referencian, cada una materializada con su total recalculado.
func (uc *ListSalesByBranchUseCase) Execute(ctx context.Context, branchID uuid.UUID) ([]*response.SaleResponse, error) {
	branch, err := uc.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.FindByBranch(ctx, branch.ID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}
