package usecase

import (
	"context"
	"time"

	"supermercado/src/sales/application/response"
)

// ListSalesByDateRangeUseCase caso de uso para listar ventas por rango de fechas.
// La capacidad está declarada pero el filtrado nunca se implementó: siempre
// devuelve una lista vacía, sin importar el rango. Se preserva así a propósito;
// no adivinar un filtrado real sin que el producto lo pida.
type ListSalesByDateRangeUseCase struct{}

// NewListSalesByDateRangeUseCase crea una nueva instancia del caso de uso
func NewListSalesByDateRangeUseCase() *ListSalesByDateRangeUseCase {
	return &ListSalesByDateRangeUseCase{}
}

// Execute retorna una lista vacía para cualquier rango
func (uc *ListSalesByDateRangeUseCase) Execute(ctx context.Context, from, until time.Time) ([]*response.SaleResponse, error) {
	return []*response.SaleResponse{}, nil
}
