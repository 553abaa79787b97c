package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// stubAuthService lets each test pin the outcome of a single call.
type stubAuthService struct {
	registered *ports.RegisterInput
	user       *domain.User
	err        error
	updated    *ports.UpdateAccountInput
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registered = &input
	return s.user, s.err
}

func (s *stubAuthService) Login(context.Context, string, string, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) ResolveToken(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) UpdateAccount(_ context.Context, _ *domain.User, input ports.UpdateAccountInput) error {
	s.updated = &input
	return s.err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{
		Email:    "jane@example.com",
		APIToken: "31a023e212f116124a36af14ea0c1c3806eb9378",
		Roles:    []string{domain.RoleUser},
	}}
	h := NewAuthHandler(svc)

	c, rec := postJSON(newEcho(), "/api/registration",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"s3cretpass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["user"] != "jane@example.com" {
		t.Fatalf("unexpected user: %v", body["user"])
	}
	if body["apiToken"] != "31a023e212f116124a36af14ea0c1c3806eb9378" {
		t.Fatalf("unexpected token: %v", body["apiToken"])
	}
	if svc.registered == nil || svc.registered.Email != "jane@example.com" {
		t.Fatalf("service did not receive the registration input")
	}
}

func TestAuthHandler_Register_InvalidRolePropagates(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidRole}
	h := NewAuthHandler(svc)

	c, _ := postJSON(newEcho(), "/api/registration",
		`{"firstName":"Eve","lastName":"Hacker","email":"eve@example.com","password":"s3cretpass","role":"ROLE_HACKER"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// Password below the minimum never reaches the service.
	c, rec := postJSON(newEcho(), "/api/registration",
		`{"firstName":"Jo","lastName":"Short","email":"jo@example.com","password":"short"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_ReturnsStoredToken(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{
		Email:    "jane@example.com",
		APIToken: "static-token",
		Roles:    []string{domain.RoleUser},
	}}
	h := NewAuthHandler(svc)

	c, rec := postJSON(newEcho(), "/api/login",
		`{"username":"jane@example.com","password":"s3cretpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["apiToken"] != "static-token" {
		t.Fatalf("unexpected token: %v", body["apiToken"])
	}
}

func TestAuthHandler_Login_FailurePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := postJSON(newEcho(), "/api/login",
		`{"username":"jane@example.com","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me_RequiresPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/account/me", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	if err := h.Me(c); err != nil {
		t.Fatalf("me error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_SerializesPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/account/me", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.Set("principal", &domain.User{Email: "jane@example.com", Roles: []string{domain.RoleUser}})

	if err := h.Me(c); err != nil {
		t.Fatalf("me error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "jane@example.com") {
		t.Fatalf("principal not serialized: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material must never serialize: %s", rec.Body.String())
	}
}
