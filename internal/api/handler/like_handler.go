package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-zoo/zoo-api/internal/api/metrics"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// LikeHandler exposes the per-animal like counter.
type LikeHandler struct {
	service ports.LikeService
}

func NewLikeHandler(service ports.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

type likeResponse struct {
	Message string `json:"message"`
	Likes   int64  `json:"likes"`
}

// Like handles POST /api/like/:animalId.
//
// @Summary      Like an animal
// @Tags         likes
// @Produce      json
// @Param        animalId  path      string  true  "Animal identifier"
// @Success      201       {object}  likeResponse
// @Router       /api/like/{animalId} [post]
func (h *LikeHandler) Like(c echo.Context) error {
	count, err := h.service.Like(c.Request().Context(), c.Param("animalId"))
	if err != nil {
		return err
	}

	metrics.LikesTotal.Inc()
	return c.JSON(http.StatusCreated, likeResponse{Message: "Like added", Likes: count})
}

// Likes handles GET /api/like/:animalId.
//
// @Summary      Read an animal's like count
// @Tags         likes
// @Produce      json
// @Param        animalId  path      string  true  "Animal identifier"
// @Success      200       {object}  likeResponse
// @Router       /api/like/{animalId} [get]
func (h *LikeHandler) Likes(c echo.Context) error {
	count, err := h.service.Likes(c.Request().Context(), c.Param("animalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeResponse{Message: "Like count", Likes: count})
}
