package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// stubAuthService resolves a single known token.
type stubAuthService struct {
	token     string
	principal *domain.User
	resolved  int
}

func (s *stubAuthService) ResolveToken(_ context.Context, token string) (*domain.User, error) {
	s.resolved++
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	if token != s.token {
		return nil, domain.ErrInvalidToken
	}
	clone := *s.principal
	return &clone, nil
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, nil
}
func (s *stubAuthService) Login(context.Context, string, string, string) (*domain.User, error) {
	return nil, nil
}
func (s *stubAuthService) UpdateAccount(context.Context, *domain.User, ports.UpdateAccountInput) error {
	return nil
}

func employeePrincipal() *domain.User {
	return &domain.User{
		ID:    1,
		Email: "staff@arcadia.fr",
		Roles: []string{domain.RoleEmployee},
	}
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body["message"]
}

func TestTokenAuth_NoHeaderPassesThroughAnonymously(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := &stubAuthService{token: "tok", principal: employeePrincipal()}
	called := false
	handler := TokenAuth(svc)(func(c echo.Context) error {
		called = true
		if _, ok := Principal(c); ok {
			t.Fatalf("expected anonymous request, principal present")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if svc.resolved != 0 {
		t.Fatalf("resolver must not run without the header")
	}
}

func TestTokenAuth_EmptyHeaderValue(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := TokenAuth(&stubAuthService{token: "tok", principal: employeePrincipal()})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := message(t, rec); got != "No API token provided" {
		t.Fatalf("unexpected reason: %q", got)
	}
}

func TestTokenAuth_UnknownToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TokenHeader, "not-a-real-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := TokenAuth(&stubAuthService{token: "tok", principal: employeePrincipal()})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := message(t, rec); got != "Invalid API token" {
		t.Fatalf("unexpected reason: %q", got)
	}
}

func TestTokenAuth_ValidToken(t *testing.T) {
	e := echo.New()
	svc := &stubAuthService{token: "tok", principal: employeePrincipal()}

	// Same request twice: the token is never consumed, so both resolve.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TokenHeader, "tok")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := TokenAuth(svc)(func(c echo.Context) error {
			called = true
			principal, ok := Principal(c)
			if !ok {
				t.Fatalf("principal missing after valid token")
			}
			if principal.Email != "staff@arcadia.fr" {
				t.Fatalf("wrong principal: %q", principal.Email)
			}
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !called {
			t.Fatalf("next not called on attempt %d", i)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
}
