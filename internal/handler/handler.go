package handler

import (
	"errors"
	"net/http"

	"tambar-be/internal/customer"
	"tambar-be/internal/dashboard"
	"tambar-be/internal/order"
	"tambar-be/internal/product"
	"tambar-be/internal/social"
	"tambar-be/internal/whatsapp"

	"github.com/labstack/echo/v4"
)

// Handler groups the HTTP endpoints over the injected services.
type Handler struct {
	ProductSvc   product.Service
	CustomerSvc  customer.Service
	OrderSvc     order.Service
	WhatsAppSvc  whatsapp.Service
	SocialSvc    social.Service
	DashboardSvc dashboard.Service
}

// RegisterRoutes mounts all endpoints under the /api prefix.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/", h.Root)

	api.GET("/dashboard/stats", h.GetDashboardStats)

	api.GET("/products", h.ListProducts)
	api.POST("/products", h.CreateProduct)
	api.PUT("/products/:id", h.UpdateProduct)
	api.GET("/products/low-stock", h.ListLowStockProducts)

	api.GET("/customers", h.ListCustomers)
	api.POST("/customers", h.CreateCustomer)

	api.GET("/orders", h.ListOrders)
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders/:id", h.GetOrder)
	api.PUT("/orders/:id/status", h.UpdateOrderStatus)

	api.GET("/whatsapp/messages", h.ListMessages)
	api.POST("/whatsapp/send", h.SendMessage)
	api.POST("/whatsapp/process", h.ProcessMessage)

	api.GET("/social-media/posts", h.ListPosts)
	api.POST("/social-media/create-ad", h.CreateAd)
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Tambar Express API - Sistema de Gestión Empresarial",
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		status = http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict

	case errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrInvalidCategory),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrEmptyName),
		errors.Is(err, customer.ErrEmptyName),
		errors.Is(err, customer.ErrEmptyPhone),
		errors.Is(err, social.ErrEmptyPlatform):
		status = http.StatusBadRequest
	}

	return c.JSON(status, echo.Map{"error": err.Error()})
}
