package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// ResourceHandler serves the uniform CRUD surface shared by the catalog
// entities: bind the JSON body into the entity, persist, serialize back.
// Role gates are applied per-route in the router, not here.
type ResourceHandler[T any] struct {
	repo ports.CrudRepository[T]
	base string // route base, e.g. "/api/animal"; used for the Location header
}

func NewResourceHandler[T any](repo ports.CrudRepository[T], base string) *ResourceHandler[T] {
	return &ResourceHandler[T]{repo: repo, base: base}
}

// Create handles POST <base>.
func (h *ResourceHandler[T]) Create(c echo.Context) error {
	var entity T
	if err := c.Bind(&entity); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	if err := h.repo.Create(c.Request().Context(), &entity); err != nil {
		return err
	}

	c.Response().Header().Set("Location", fmt.Sprintf("%s/%d", h.base, entityID(&entity)))
	return c.JSON(http.StatusCreated, entity)
}

// List handles GET <base>.
func (h *ResourceHandler[T]) List(c echo.Context) error {
	entities, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entities)
}

// Get handles GET <base>/:id.
func (h *ResourceHandler[T]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	entity, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity)
}

// Update handles PUT <base>/:id. The body is decoded over the stored
// entity, so absent fields keep their current values (partial update).
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	entity, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if err := c.Bind(entity); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	setEntityID(entity, id) // the path wins over any id in the body

	if err := h.repo.Update(c.Request().Context(), entity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE <base>/:id.
func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
