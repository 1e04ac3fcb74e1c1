package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	catalogEntity "supermercado/src/catalog/domain/entity"
	"supermercado/src/sales/application/request"
	"supermercado/src/sales/application/usecase"
	"supermercado/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleController maneja las peticiones HTTP para ventas
type SaleController struct {
	createSaleUC      *usecase.CreateSaleUseCase
	updateSaleUC      *usecase.UpdateSaleUseCase
	deleteSaleUC      *usecase.DeleteSaleUseCase
	listSalesUC       *usecase.ListSalesUseCase
	listByBranchUC    *usecase.ListSalesByBranchUseCase
	listByDateRangeUC *usecase.ListSalesByDateRangeUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	deleteSaleUC *usecase.DeleteSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	listByBranchUC *usecase.ListSalesByBranchUseCase,
	listByDateRangeUC *usecase.ListSalesByDateRangeUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC:      createSaleUC,
		updateSaleUC:      updateSaleUC,
		deleteSaleUC:      deleteSaleUC,
		listSalesUC:       listSalesUC,
		listByBranchUC:    listByBranchUC,
		listByDateRangeUC: listByDateRangeUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/by-date-range", c.ListSalesByDateRange)
		sales.POST("", c.CreateSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
	}

	// Listado de ventas por sucursal, colgado del recurso sucursal
	router.GET("/branches/:branch_id/sales", c.ListSalesByBranch)

	log.Println("Rutas Sales disponibles:")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/by-date-range")
	log.Println("  POST   /api/v1/sales")
	log.Println("  PUT    /api/v1/sales/:sale_id")
	log.Println("  DELETE /api/v1/sales/:sale_id")
	log.Println("  GET    /api/v1/branches/:branch_id/sales")
}

// CreateSale registra una venta con sus items
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateSale aplica una actualización parcial sobre una venta
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_id format"})
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateSaleUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteSale elimina una venta y sus items
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_id format"})
		return
	}

	if err := c.deleteSaleUC.Execute(ctx.Request.Context(), saleID); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListSales lista todas las ventas
func (c *SaleController) ListSales(ctx *gin.Context) {
	items, err := c.listSalesUC.Execute(ctx.Request.Context())
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// ListSalesByBranch lista las ventas de una sucursal
func (c *SaleController) ListSalesByBranch(ctx *gin.Context) {
	branchID, err := uuid.Parse(ctx.Param("branch_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch_id format"})
		return
	}

	items, err := c.listByBranchUC.Execute(ctx.Request.Context(), branchID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// ListSalesByDateRange lista ventas por rango de fechas. El caso de uso es un
// no-op documentado: la lista siempre viene vacía.
func (c *SaleController) ListSalesByDateRange(ctx *gin.Context) {
	from, err := time.Parse("2006-01-02", ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "from must have format YYYY-MM-DD"})
		return
	}
	until, err := time.Parse("2006-01-02", ctx.Query("until"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "until must have format YYYY-MM-DD"})
		return
	}

	items, err := c.listByDateRangeUC.Execute(ctx.Request.Context(), from, until)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// renderError mapea errores de dominio a códigos HTTP
func (c *SaleController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrSaleNotFound),
		errors.Is(err, catalogEntity.ErrBranchNotFound),
		errors.Is(err, catalogEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrRequestRequired),
		errors.Is(err, entity.ErrBranchRequired),
		errors.Is(err, entity.ErrSaleMustHaveItems),
		errors.Is(err, entity.ErrProductNameRequired),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error handling sale request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
