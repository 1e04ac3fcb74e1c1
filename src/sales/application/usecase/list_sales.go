package usecase

import (
	"context"

	"supermercado/src/sales/application/response"
	"supermercado/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para listar todas las ventas
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute retorna todas las ventas, cada una con su total recalculado
func (uc *ListSalesUseCase) Execute(ctx context.Context) ([]*response.SaleResponse, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}
