package main

import (
	"database/sql"
	"net/http"

	"tambar-be/internal/config"
	"tambar-be/internal/customer"
	"tambar-be/internal/dashboard"
	"tambar-be/internal/db"
	"tambar-be/internal/handler"
	"tambar-be/internal/logger"
	"tambar-be/internal/metrics"
	appmw "tambar-be/internal/middleware"
	"tambar-be/internal/order"
	"tambar-be/internal/product"
	"tambar-be/internal/social"
	"tambar-be/internal/whatsapp"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Indirections for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

// newServer wires repositories, services and HTTP routes onto an echo instance.
func newServer(cfg *config.Config, database *sql.DB) *echo.Echo {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo, customerRepo)

	whatsappRepo := whatsapp.NewRepository(database)
	interpreter := whatsapp.NewInterpreter(productRepo, orderRepo)
	whatsappSvc := whatsapp.NewService(whatsappRepo, interpreter)

	socialRepo := social.NewRepository(database)
	socialSvc := social.NewService(socialRepo, productRepo)

	dashboardRepo := dashboard.NewRepository(database)
	dashboardSvc := dashboard.NewService(dashboardRepo)

	h := &handler.Handler{
		ProductSvc:   productSvc,
		CustomerSvc:  customerSvc,
		OrderSvc:     orderSvc,
		WhatsAppSvc:  whatsappSvc,
		SocialSvc:    socialSvc,
		DashboardSvc: dashboardSvc,
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(appmw.RequestID)
	e.Use(appmw.Logging)
	e.Use(appmw.Metrics)
	e.Use(appmw.RateLimit)

	h.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		if err := database.Ping(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	metrics.Init(cfg.MetricsPrefix)

	database := initDBFunc(cfg)
	defer database.Close()

	e := newServer(cfg, database)

	logger.L().Info("🚀 server listening", zap.String("port", cfg.AppPort))
	if err := startServerFunc(e, ":"+cfg.AppPort); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
