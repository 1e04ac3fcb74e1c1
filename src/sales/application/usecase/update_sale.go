package usecase

import (
	"context"
	"fmt"
	"time"

	catalogPort "supermercado/src/catalog/domain/port"
	"supermercado/src/sales/application/request"
	"supermercado/src/sales/application/response"
	"supermercado/src/sales/domain/entity"
	"supermercado/src/sales/domain/port"

	"github.com/google/uuid"
)

// UpdateSaleUseCase caso de uso para actualización parcial de una venta.
// Solo se tocan los campos presentes en el patch; los items de la venta no
// se pueden agregar, modificar ni quitar por esta vía.
type UpdateSaleUseCase struct {
	saleRepo   port.SaleRepository
	branchRepo catalogPort.BranchRepository
}

// NewUpdateSaleUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, branchRepo catalogPort.BranchRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:   saleRepo,
		branchRepo: branchRepo,
	}
}

// Execute aplica el patch sobre la venta y devuelve la vista materializada.
// Un total enviado por el caller se almacena, pero la respuesta igual lo
// recalcula desde los items.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.UpdateSaleRequest) (*response.SaleResponse, error) {
	if req == nil {
		return nil, entity.ErrRequestRequired
	}

	// Buscar si la venta existe
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	// Aplicar solo los campos presentes
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, entity.ErrInvalidDate
		}
		sale.Date = date
	}

	if req.BranchID != nil {
		// La nueva sucursal se re-resuelve contra el catálogo
		branch, err := uc.branchRepo.FindByID(ctx, *req.BranchID)
		if err != nil {
			return nil, err
		}
		sale.BranchID = branch.ID
	}

	if req.Status != nil {
		status, err := entity.ParseSaleStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		sale.Status = status
	}

	if req.Total != nil {
		sale.Total = *req.Total
	}

	if err := uc.saleRepo.Save(ctx, sale); err != nil {
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	return toSaleResponse(sale), nil
}
