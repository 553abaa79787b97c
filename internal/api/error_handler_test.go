package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body["message"]
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"bad role", domain.ErrInvalidRole, http.StatusBadRequest, "Role non autorisé"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Missing credentials"},
		{"empty token", domain.ErrMissingToken, http.StatusUnauthorized, "No API token provided"},
		{"unknown token", domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid API token"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestErrorHandler_EchoErrorsKeepTheirCode(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid id"))
	if code != http.StatusBadRequest || msg != "invalid id" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownErrorsAre500(t *testing.T) {
	code, msg := render(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak: %q", msg)
	}
}
