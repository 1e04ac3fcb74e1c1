package usecase

import (
	"context"
	"fmt"

	"supermercado/src/catalog/application/request"
	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/port"

	"github.com/google/uuid"
)

// UpdateProductUseCase caso de uso para reemplazar los atributos de un producto.
// Las ventas existentes no se ven afectadas: cada línea conserva el precio
// capturado al momento de la venta.
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute actualiza el producto; entity.ErrProductNotFound si no existe
func (uc *UpdateProductUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Category, req.Price, req.Stock); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return toProductResponse(product), nil
}
