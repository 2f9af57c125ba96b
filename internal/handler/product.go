package handler

import (
	"net/http"

	"tambar-be/internal/logger"
	"tambar-be/internal/product"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.ProductSvc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if products == nil {
		products = []product.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromCtx(ctx)

	var input product.NewProductInput
	if err := c.Bind(&input); err != nil {
		log.Warn("invalid product payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	p, err := h.ProductSvc.Create(ctx, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var input product.NewProductInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	p, err := h.ProductSvc.Update(ctx, c.Param("id"), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListLowStockProducts(c echo.Context) error {
	products, err := h.ProductSvc.LowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if products == nil {
		products = []product.Product{}
	}
	return c.JSON(http.StatusOK, products)
}
