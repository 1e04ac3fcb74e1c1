package entity

// SaleStatus representa el estado de una venta
type SaleStatus string

const (
	SaleStatusRegistered SaleStatus = "REGISTERED"
	SaleStatusVoided     SaleStatus = "VOIDED"
)

// ParseSaleStatus valida que el string pertenezca al conjunto cerrado de estados.
// No hay reglas de transición: cualquier estado puede reemplazar a cualquier otro.
func ParseSaleStatus(s string) (SaleStatus, error) {
	switch SaleStatus(s) {
	case SaleStatusRegistered, SaleStatusVoided:
		return SaleStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
