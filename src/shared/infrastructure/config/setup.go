package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS       bool
	AllowedOrigins   []string
	AllowCredentials bool
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:       true,
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	if config.EnableCORS {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     config.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: config.AllowCredentials,
		}))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
}
