package account

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phr/phr/pkg/identifier"
)

// TokenIssuer signs a session token at login. Nil disables token issuance
// (AUTH_DISABLED mode).
type TokenIssuer interface {
	Generate(userID, email string) (string, error)
}

type Handler struct {
	svc    *Service
	tokens TokenIssuer
}

func NewHandler(svc *Service, tokens TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// RegisterRoutes wires the public auth endpoints and the per-user profile
// endpoints. The profile group is expected to carry the session middleware.
func (h *Handler) RegisterRoutes(public *echo.Group, profile *echo.Group) {
	public.POST("/signup", h.Signup)
	public.POST("/login", h.Login)
	profile.GET("/profile/:userId", h.GetProfile)
	profile.PUT("/profile/:userId", h.UpdateProfile)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.svc.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var policyErr *PolicyError
		switch {
		case errors.Is(err, ErrMissingFields):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &policyErr):
			return echo.NewHTTPError(http.StatusBadRequest, policyErr.Reason)
		case errors.Is(err, ErrEmailInUse):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusCreated, map[string]string{"userId": id.String()})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *PublicUser `json:"user"`
	Token string      `json:"token,omitempty"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	resp := loginResponse{User: u}
	if h.tokens != nil {
		tok, err := h.tokens.Generate(u.ID.String(), u.Email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
		resp.Token = tok
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProfile(c echo.Context) error {
	u, err := h.svc.GetProfile(c.Request().Context(), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, identifier.ErrInvalid):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var upd ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.svc.UpdateProfile(c.Request().Context(), c.Param("userId"), upd)
	if err != nil {
		switch {
		case errors.Is(err, identifier.ErrInvalid), errors.Is(err, ErrInvalidAge):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}
