package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto en las respuestas del catálogo
type ProductResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}
