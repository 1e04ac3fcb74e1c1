package entity

import "github.com/shopspring/decimal"

// Motor de valuación de ventas: funciones puras, sin efectos secundarios.
// Se usa tanto al construir una venta como en cada materialización de lectura,
// de modo que el total reportado siempre refleja los items actuales y nunca
// un valor almacenado.

// Subtotal calcula el subtotal de una línea: precio unitario por cantidad.
func Subtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Total suma los subtotales de todos los items, de izquierda a derecha
// partiendo de cero. Recalcula cada subtotal desde cantidad y precio en vez
// de confiar en el campo Subtotal persistido.
func Total(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(Subtotal(item.Quantity, item.UnitPrice))
	}
	return total
}
