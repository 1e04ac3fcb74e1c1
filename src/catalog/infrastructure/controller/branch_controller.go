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

// BranchController maneja las peticiones HTTP para sucursales
type BranchController struct {
	createBranchUC *usecase.CreateBranchUseCase
	updateBranchUC *usecase.UpdateBranchUseCase
	deleteBranchUC *usecase.DeleteBranchUseCase
	listBranchesUC *usecase.ListBranchesUseCase
}

// NewBranchController crea una nueva instancia del controlador
func NewBranchController(
	createBranchUC *usecase.CreateBranchUseCase,
	updateBranchUC *usecase.UpdateBranchUseCase,
	deleteBranchUC *usecase.DeleteBranchUseCase,
	listBranchesUC *usecase.ListBranchesUseCase,
) *BranchController {
	return &BranchController{
		createBranchUC: createBranchUC,
		updateBranchUC: updateBranchUC,
		deleteBranchUC: deleteBranchUC,
		listBranchesUC: listBranchesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *BranchController) RegisterRoutes(router *gin.RouterGroup) {
	branches := router.Group("/branches")
	{
		branches.GET("", c.ListBranches)
		branches.POST("", c.CreateBranch)
		branches.PUT("/:branch_id", c.UpdateBranch)
		branches.DELETE("/:branch_id", c.DeleteBranch)
	}

	log.Println("Rutas Branches disponibles:")
	log.Println("  GET    /api/v1/branches")
	log.Println("  POST   /api/v1/branches")
	log.Println("  PUT    /api/v1/branches/:branch_id")
	log.Println("  DELETE /api/v1/branches/:branch_id")
}

// ListBranches lista todas las sucursales
func (c *BranchController) ListBranches(ctx *gin.Context) {
	items, err := c.listBranchesUC.Execute(ctx.Request.Context())
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// CreateBranch da de alta una sucursal
func (c *BranchController) CreateBranch(ctx *gin.Context) {
	var req request.BranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.createBranchUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateBranch reemplaza los datos de una sucursal
func (c *BranchController) UpdateBranch(ctx *gin.Context) {
	branchID, err := uuid.Parse(ctx.Param("branch_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch_id format"})
		return
	}

	var req request.BranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateBranchUC.Execute(ctx.Request.Context(), branchID, &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteBranch elimina una sucursal
func (c *BranchController) DeleteBranch(ctx *gin.Context) {
	branchID, err := uuid.Parse(ctx.Param("branch_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch_id format"})
		return
	}

	if err := c.deleteBranchUC.Execute(ctx.Request.Context(), branchID); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BranchController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrBranchNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidBranchName),
		errors.Is(err, entity.ErrInvalidBranchAddress):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error handling branch request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
