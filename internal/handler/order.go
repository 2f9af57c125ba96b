package handler

import (
	"net/http"

	"tambar-be/internal/order"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	CustomerID      string              `json:"customer_id"`
	Items           []order.ItemRequest `json:"items"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	DeliveryFee     float64             `json:"delivery_fee"`
	PaymentMethod   *string             `json:"payment_method,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.OrderSvc.GetOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if orders == nil {
		orders = []*order.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	o, err := h.OrderSvc.GetOrderDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	input := order.NewOrderInput{
		CustomerID:      req.CustomerID,
		Items:           req.Items,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryFee:     req.DeliveryFee,
		Notes:           req.Notes,
	}

	if req.PaymentMethod != nil {
		method, err := order.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return writeError(c, err)
		}
		input.PaymentMethod = &method
	}

	o, err := h.OrderSvc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	o, err := h.OrderSvc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, o)
}
