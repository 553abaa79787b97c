package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-zoo/zoo-api/internal/api/metrics"
	"github.com/arcadia-zoo/zoo-api/internal/api/middleware"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// AuthHandler exposes registration, login and account management.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registrationRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type editAccountRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// authResponse mirrors the historical payload: the user is represented by
// its identifier (email), alongside the static API token and role set.
type authResponse struct {
	User     string   `json:"user"`
	APIToken string   `json:"apiToken"`
	Roles    []string `json:"roles"`
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registrationRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/registration [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Roles[0]).Inc()

	return c.JSON(http.StatusCreated, authResponse{
		User:     user.Email,
		APIToken: user.APIToken,
		Roles:    user.Roles,
	})
}

// Login authenticates an email/password pair and returns the account's
// static API token. No new token is minted here.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Missing credentials"})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, c.RealIP())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		User:     user.Email,
		APIToken: user.APIToken,
		Roles:    user.Roles,
	})
}

// Me returns the full serialized account of the authenticated principal.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/account/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Missing credentials"})
	}
	return c.JSON(http.StatusOK, principal)
}

// Edit applies a partial update to the authenticated account.
//
// @Summary      Edit the current account
// @Tags         auth
// @Accept       json
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/account/edit [put]
func (h *AuthHandler) Edit(c echo.Context) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Missing credentials"})
	}

	var req editAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	err := h.authService.UpdateAccount(c.Request().Context(), principal, ports.UpdateAccountInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
