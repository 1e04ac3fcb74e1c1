package usecase

import (
	"context"
	"fmt"

	"supermercado/src/catalog/application/request"
	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/entity"
	"supermercado/src/catalog/domain/port"
)

// CreateProductUseCase caso de uso para dar de alta un producto
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute crea el producto. La unicidad del nombre la garantiza el índice
// único del storage; la violación llega como error del repositorio.
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	product, err := entity.NewProduct(req.Name, req.Category, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	return toProductResponse(product), nil
}
