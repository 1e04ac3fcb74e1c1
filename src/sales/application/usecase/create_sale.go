package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogEntity "supermercado/src/catalog/domain/entity"
	catalogPort "supermercado/src/catalog/domain/port"
	"supermercado/src/sales/application/request"
	"supermercado/src/sales/application/response"
	"supermercado/src/sales/domain/entity"
	"supermercado/src/sales/domain/port"

	"github.com/google/uuid"
)

// CreateSaleUseCase caso de uso para registrar una venta.
// Orquesta: validación del request, resolución de sucursal y productos,
// construcción del aggregate y persistencia atómica.
type CreateSaleUseCase struct {
	saleRepo    port.SaleRepository
	branchRepo  catalogPort.BranchRepository
	productRepo catalogPort.ProductRepository
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(
	saleRepo port.SaleRepository,
	branchRepo catalogPort.BranchRepository,
	productRepo catalogPort.ProductRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		branchRepo:  branchRepo,
		productRepo: productRepo,
	}
}

// Execute registra la venta. Toda resolución ocurre antes de cualquier
// escritura: si una sucursal o un producto no existe, no se persiste nada.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	// Validaciones estructurales del request
	if req == nil {
		return nil, entity.ErrRequestRequired
	}
	if req.BranchID == uuid.Nil {
		return nil, entity.ErrBranchRequired
	}
	if len(req.Items) == 0 {
		return nil, entity.ErrSaleMustHaveItems
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, entity.ErrInvalidDate
	}

	status, err := entity.ParseSaleStatus(req.Status)
	if err != nil {
		return nil, err
	}

	// Resolver la sucursal
	branch, err := uc.branchRepo.FindByID(ctx, req.BranchID)
	if err != nil {
		return nil, err
	}

	// Resolver cada producto por nombre exacto, fail-fast en el primero
	// que no exista. El precio unitario que queda en la línea es el del
	// request, no el precio actual del producto (snapshot al momento de
	// la venta).
	items := make([]entity.SaleItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		product, err := uc.productRepo.FindByName(ctx, itemReq.ProductName)
		if err != nil {
			if errors.Is(err, catalogEntity.ErrProductNotFound) {
				return nil, fmt.Errorf("%w: %s", catalogEntity.ErrProductNotFound, itemReq.ProductName)
			}
			return nil, err
		}

		item, err := entity.NewSaleItem(product.ID, product.Name, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	// Crear el aggregate
	sale, err := entity.NewSale(date, status, branch.ID, items, req.Total)
	if err != nil {
		return nil, err
	}

	// Persistir venta + items como una sola unidad
	if err := uc.saleRepo.Save(ctx, sale); err != nil {
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	return toSaleResponse(sale), nil
}
