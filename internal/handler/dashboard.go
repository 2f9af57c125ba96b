package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetDashboardStats(c echo.Context) error {
	stats, err := h.DashboardSvc.GetStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
