package usecase

import (
	"context"

	"supermercado/src/catalog/domain/port"

	"github.com/google/uuid"
)

// DeleteProductUseCase caso de uso para eliminar un producto del catálogo
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute elimina el producto; entity.ErrProductNotFound si no existe
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uuid.UUID) error {
	return uc.productRepo.Delete(ctx, productID)
}
