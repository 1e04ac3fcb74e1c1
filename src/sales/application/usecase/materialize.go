package usecase

import (
	"supermercado/src/sales/application/response"
	"supermercado/src/sales/domain/entity"
)

const dateLayout = "2006-01-02"

// toSaleResponse materializa la vista de una venta. Subtotales y total salen
// del motor de valuación sobre los items actuales: el total almacenado existe
// como columna pero acá se ignora deliberadamente.
func toSaleResponse(sale *entity.Sale) *response.SaleResponse {
	items := make([]response.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, response.SaleItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    entity.Subtotal(item.Quantity, item.UnitPrice),
		})
	}

	return &response.SaleResponse{
		ID:       sale.ID,
		Date:     sale.Date.Format(dateLayout),
		Status:   string(sale.Status),
		BranchID: sale.BranchID,
		Items:    items,
		Total:    entity.Total(sale.Items),
	}
}

func toSaleResponses(sales []*entity.Sale) []*response.SaleResponse {
	responses := make([]*response.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, toSaleResponse(sale))
	}
	return responses
}
