package completion

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phr/phr/internal/domain/account"
	"github.com/phr/phr/internal/domain/healthprofile"
	"github.com/phr/phr/pkg/identifier"
)

// UserSource yields the basic profile half of the score.
type UserSource interface {
	GetProfile(ctx context.Context, rawUserID string) (*account.User, error)
}

// HealthSource yields the health record half of the score.
type HealthSource interface {
	Get(ctx context.Context, rawUserID string) (*healthprofile.Profile, error)
}

type Handler struct {
	users  UserSource
	health HealthSource
}

func NewHandler(users UserSource, health HealthSource) *Handler {
	return &Handler{users: users, health: health}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/completion/:userId", h.Get)
}

func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	rawUserID := c.Param("userId")

	u, err := h.users.GetProfile(ctx, rawUserID)
	if err != nil {
		switch {
		case errors.Is(err, identifier.ErrInvalid):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, account.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	var health HealthView
	p, err := h.health.Get(ctx, rawUserID)
	switch {
	case err == nil:
		health = healthViewOf(p)
	case errors.Is(err, healthprofile.ErrNotFound):
		// No record yet: the health half simply scores zero.
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	basic := BasicView{
		Age:       u.Age,
		Height:    u.Height,
		Weight:    u.Weight,
		Ethnicity: u.Ethnicity,
		Sex:       u.Sex,
	}
	return c.JSON(http.StatusOK, map[string]int{"score": Score(basic, health)})
}

func healthViewOf(p *healthprofile.Profile) HealthView {
	v := HealthView{
		BloodPressure: p.BloodPressure,
		BloodType:     p.BloodType,
		HasAllergies:  p.HasAllergies,
		HasConditions: p.HasConditions,
	}
	if c := p.Cholesterol; c != nil {
		v.Cholesterol = &Cholesterol{Total: c.Total, HDL: c.HDL, LDL: c.LDL}
	}
	return v
}
