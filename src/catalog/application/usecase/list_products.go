package usecase

import (
	"context"

	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/port"
)

// ListProductsUseCase caso de uso para listar todo el catálogo de productos
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute retorna todos los productos
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*response.ProductResponse, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}
