package request

import "github.com/shopspring/decimal"

// ProductRequest request para crear o reemplazar un producto
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// SearchProductsRequest filtros de búsqueda de productos (query params)
type SearchProductsRequest struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}
