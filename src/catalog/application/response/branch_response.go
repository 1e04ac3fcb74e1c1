package response

import "github.com/google/uuid"

// BranchResponse representa una sucursal en las respuestas del catálogo
type BranchResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}
