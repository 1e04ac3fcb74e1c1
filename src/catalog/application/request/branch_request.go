package request

// BranchRequest request para crear o reemplazar una sucursal
type BranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}
