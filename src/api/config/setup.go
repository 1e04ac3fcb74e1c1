package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API (health y versión)
type APIConfig struct {
	DB          *sql.DB
	ServiceName string
	Version     string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "supermercado",
		Version:     "dev",
	}
}

// SetupAPIModule registra los endpoints de health check en la raíz y en el
// grupo versionado
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(ctx *gin.Context) {
		dbStatus := "disabled"
		if cfg.DB != nil {
			dbStatus = "up"
			if err := cfg.DB.PingContext(ctx.Request.Context()); err != nil {
				dbStatus = "down"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  cfg.ServiceName,
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
