package medication

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/medication/:userId", h.List)
	g.POST("/medication/:userId", h.Create)
	g.DELETE("/medication/:medicationId", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	plans, err := h.svc.List(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *Handler) Create(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Create(c.Request().Context(), c.Param("userId"), draft)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Delete takes the owning user as a query parameter so the plan id can own
// the path.
func (h *Handler) Delete(c echo.Context) error {
	err := h.svc.Delete(c.Request().Context(), c.Param("medicationId"), c.QueryParam("userId"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "medication deleted"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrMissingParameters):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
