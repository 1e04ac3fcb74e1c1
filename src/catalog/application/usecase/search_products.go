package usecase

import (
	"context"

	"supermercado/src/catalog/application/request"
	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/port"
	"supermercado/src/shared/domain/criteria"
)

// SearchProductsUseCase caso de uso para buscar productos con filtros
type SearchProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewSearchProductsUseCase crea una nueva instancia del caso de uso
func NewSearchProductsUseCase(productRepo port.ProductRepository) *SearchProductsUseCase {
	return &SearchProductsUseCase{productRepo: productRepo}
}

// Execute arma el criteria desde los filtros del request y delega la
// búsqueda en el repositorio
func (uc *SearchProductsUseCase) Execute(ctx context.Context, req *request.SearchProductsRequest) ([]*response.ProductResponse, error) {
	filters := criteria.NewFilters()
	if req.Name != "" {
		filters.Add(criteria.NewFilter("name", criteria.OpLike, req.Name))
	}
	if req.Category != "" {
		filters.Add(criteria.NewFilter("category", criteria.OpEqual, req.Category))
	}

	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	crit := criteria.NewCriteria(filters, criteria.NewOrder("name", criteria.ASC), &limit, &offset)

	products, err := uc.productRepo.SearchByCriteria(ctx, crit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}
