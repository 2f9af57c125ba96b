package handler

import (
	"fmt"
	"net/http"

	"tambar-be/internal/social"

	"github.com/labstack/echo/v4"
)

type createAdRequest struct {
	Platform  string  `json:"platform"`
	ProductID *string `json:"product_id,omitempty"`
}

func (h *Handler) ListPosts(c echo.Context) error {
	posts, err := h.SocialSvc.ListPosts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if posts == nil {
		posts = []social.Post{}
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *Handler) CreateAd(c echo.Context) error {
	var req createAdRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	post, err := h.SocialSvc.CreateAd(c.Request().Context(), req.Platform, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"message": fmt.Sprintf("Anuncio creado para %s", req.Platform),
		"post":    post,
	})
}
