package main

import (
	"database/sql"
	"log"
	"os"

	apiConfig "supermercado/src/api/config"
	catalogUseCase "supermercado/src/catalog/application/usecase"
	catalogController "supermercado/src/catalog/infrastructure/controller"
	catalogPersistence "supermercado/src/catalog/infrastructure/persistence"
	salesUseCase "supermercado/src/sales/application/usecase"
	salesController "supermercado/src/sales/infrastructure/controller"
	salesPersistence "supermercado/src/sales/infrastructure/persistence"
	sharedConfig "supermercado/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Supermercado Service - Iniciando...")

	// Cargar variables de entorno desde .env si existe
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar middlewares compartidos (CORS)
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "supermercado_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error al verificar la conexión a la base de datos: %v", err)
	}
	log.Println("✅ Conexión a la base de datos establecida con éxito")

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = getEnv("SERVICE_VERSION", "1.0.0")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de negocio
	setupCatalogModule(v1, db)
	setupSalesModule(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Supermercado iniciado en http://localhost:%s", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catalog (productos y sucursales)
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Catalog...")

	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	branchRepo := catalogPersistence.NewBranchPostgresRepository(db)

	productCtrl := catalogController.NewProductController(
		catalogUseCase.NewCreateProductUseCase(productRepo),
		catalogUseCase.NewUpdateProductUseCase(productRepo),
		catalogUseCase.NewDeleteProductUseCase(productRepo),
		catalogUseCase.NewListProductsUseCase(productRepo),
		catalogUseCase.NewSearchProductsUseCase(productRepo),
	)
	branchCtrl := catalogController.NewBranchController(
		catalogUseCase.NewCreateBranchUseCase(branchRepo),
		catalogUseCase.NewUpdateBranchUseCase(branchRepo),
		catalogUseCase.NewDeleteBranchUseCase(branchRepo),
		catalogUseCase.NewListBranchesUseCase(branchRepo),
	)

	productCtrl.RegisterRoutes(router)
	branchCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
}

// setupSalesModule configura el módulo Sales
func setupSalesModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Sales...")

	saleRepo := salesPersistence.NewSalePostgresRepository(db)
	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	branchRepo := catalogPersistence.NewBranchPostgresRepository(db)

	saleCtrl := salesController.NewSaleController(
		salesUseCase.NewCreateSaleUseCase(saleRepo, branchRepo, productRepo),
		salesUseCase.NewUpdateSaleUseCase(saleRepo, branchRepo),
		salesUseCase.NewDeleteSaleUseCase(saleRepo),
		salesUseCase.NewListSalesUseCase(saleRepo),
		salesUseCase.NewListSalesByBranchUseCase(saleRepo, branchRepo),
		salesUseCase.NewListSalesByDateRangeUseCase(),
	)

	saleCtrl.RegisterRoutes(router)

	log.Println("Módulo Sales configurado exitosamente")
}
