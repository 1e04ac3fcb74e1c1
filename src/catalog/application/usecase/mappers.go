package usecase

import (
	"supermercado/src/catalog/application/response"
	"supermercado/src/catalog/domain/entity"
)

func toProductResponse(product *entity.Product) *response.ProductResponse {
	return &response.ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Stock:    product.Stock,
	}
}

func toProductResponses(products []*entity.Product) []*response.ProductResponse {
	responses := make([]*response.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses
}

func toBranchResponse(branch *entity.Branch) *response.BranchResponse {
	return &response.BranchResponse{
		ID:      branch.ID,
		Name:    branch.Name,
		Address: branch.Address,
	}
}

func toBranchResponses(branches []*entity.Branch) []*response.BranchResponse {
	responses := make([]*response.BranchResponse, 0, len(branches))
	for _, branch := range branches {
		responses = append(responses, toBranchResponse(branch))
	}
	return responses
}
