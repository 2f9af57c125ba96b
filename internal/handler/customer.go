package handler

import (
	"net/http"

	"tambar-be/internal/customer"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListCustomers(c echo.Context) error {
	customers, err := h.CustomerSvc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if customers == nil {
		customers = []customer.Customer{}
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var input customer.NewCustomerInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	cust, err := h.CustomerSvc.Create(c.Request().Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, cust)
}
