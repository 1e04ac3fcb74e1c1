package controller

import (
	"errors"
	"log"
	"net/http"

	"supermercado/src/catalog/application/request"
	"supermercado/src/catalog/application/usecase"
	"supermercado/src/catalog/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController maneja las peticiones HTTP para productos
type ProductController struct {
	createProductUC  *usecase.CreateProductUseCase
	updateProductUC  *usecase.UpdateProductUseCase
	deleteProductUC  *usecase.DeleteProductUseCase
	listProductsUC   *usecase.ListProductsUseCase
	searchProductsUC *usecase.SearchProductsUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
	listProductsUC *usecase.ListProductsUseCase,
	searchProductsUC *usecase.SearchProductsUseCase,
) *ProductController {
	return &ProductController{
		createProductUC:  createProductUC,
		updateProductUC:  updateProductUC,
		deleteProductUC:  deleteProductUC,
		listProductsUC:   listProductsUC,
		searchProductsUC: searchProductsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/search", c.SearchProducts)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
	}

	log.Println("Rutas Products disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/search")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
}

// ListProducts lista todo el catálogo
func (c *ProductController) ListProducts(ctx *gin.Context) {
	items, err := c.listProductsUC.Execute(ctx.Request.Context())
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// SearchProducts busca productos por nombre y/o categoría
func (c *ProductController) SearchProducts(ctx *gin.Context) {
	var req request.SearchProductsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := c.searchProductsUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// CreateProduct da de alta un producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateProduct reemplaza los atributos de un producto
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateProductUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteProduct elimina un producto
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidProductName),
		errors.Is(err, entity.ErrInvalidProductPrice),
		errors.Is(err, entity.ErrInvalidProductStock):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error handling product request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
