package handler

import (
	"net/http"
	"strings"

	"tambar-be/internal/utils"
	"tambar-be/internal/whatsapp"

	"github.com/labstack/echo/v4"
)

type messageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r *messageRequest) validate() error {
	if strings.TrimSpace(r.Phone) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}
	if r.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	return nil
}

func (h *Handler) ListMessages(c echo.Context) error {
	messages, err := h.WhatsAppSvc.ListMessages(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if messages == nil {
		messages = []whatsapp.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *Handler) SendMessage(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return err
	}

	if _, err := h.WhatsAppSvc.Send(c.Request().Context(), req.Phone, req.Message); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "sent",
		"message": "Mensaje enviado via WhatsApp Business",
	})
}

func (h *Handler) ProcessMessage(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := req.validate(); err != nil {
		return err
	}

	m, err := h.WhatsAppSvc.Process(c.Request().Context(), req.Phone, req.Message)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"response": utils.PtrString(m.Response),
		"command":  utils.PtrString(m.Command),
	})
}
