package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/surojitbera2/inventory/docs"
	"github.com/surojitbera2/inventory/internal/api/handler"
	"github.com/surojitbera2/inventory/internal/api/middleware"
	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/service"
	"github.com/surojitbera2/inventory/internal/infrastructure/config"
	mongodb "github.com/surojitbera2/inventory/internal/infrastructure/db/mongo"
	redisdb "github.com/surojitbera2/inventory/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	vendorRepo := mongodb.NewVendorRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	replayStore := redisdb.NewReplayStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	vendorService := service.NewVendorService(vendorRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	productService := service.NewProductService(productRepo, vendorRepo, log)
	saleService := service.NewSaleService(saleRepo, productRepo, customerRepo, replayStore, log)
	reportService := service.NewReportService(productRepo, saleRepo, vendorRepo, customerRepo)
	companyService := service.NewCompanyService(companyRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	reportHandler := handler.NewReportHandler(reportService)
	companyHandler := handler.NewCompanyHandler(companyService)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Public auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := api.Group("", middleware.Auth(authService))
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	authed.GET("/auth/me", authHandler.Me)

	authed.POST("/vendors", vendorHandler.Create)
	authed.GET("/vendors", vendorHandler.List)
	authed.PUT("/vendors/:id", vendorHandler.Update)
	authed.DELETE("/vendors/:id", vendorHandler.Delete, adminOnly)

	authed.POST("/customers", customerHandler.Create)
	authed.GET("/customers", customerHandler.List)
	authed.PUT("/customers/:id", customerHandler.Update)
	authed.DELETE("/customers/:id", customerHandler.Delete, adminOnly)

	authed.POST("/products", productHandler.Create)
	authed.GET("/products", productHandler.List)
	authed.PUT("/products/:id", productHandler.Update)
	authed.DELETE("/products/:id", productHandler.Delete, adminOnly)

	authed.POST("/sales", saleHandler.Create)
	authed.GET("/sales", saleHandler.List)

	authed.GET("/stock", reportHandler.Stock)
	authed.GET("/dashboard/stats", reportHandler.Dashboard)

	authed.GET("/company", companyHandler.Get)
	authed.PUT("/company", companyHandler.Update, adminOnly)

	return e
}
