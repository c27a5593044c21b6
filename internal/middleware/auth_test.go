package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/customer-api/internal/token"
)

const testSecret = "test-secret"

func newTestAuth(t *testing.T) (*AuthMiddleware, *token.Issuer) {
	t.Helper()

	issuer, err := token.NewIssuer(testSecret)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	validator, err := token.NewValidator(testSecret)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return NewAuthMiddleware(validator, zap.NewNop()), issuer
}

func TestAuthMiddleware_WithValidToken(t *testing.T) {
	m, issuer := newTestAuth(t)

	signed, _, err := issuer.Issue("Alice", "2024-01-01 10:00:00")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			t.Fatalf("claims not in context")
		}
		if claims.Name != "Alice" {
			t.Fatalf("name claim = %q, want Alice", claims.Name)
		}
	})

	r := httptest.NewRequest(http.MethodPost, "/api/customer-items", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	handler := m.Middleware(next)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if !nextCalled {
		t.Fatalf("next handler was not called")
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	m, issuer := newTestAuth(t)

	signed, _, err := issuer.Issue("Alice", "2024-01-01 10:00:00")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "no header", authHeader: ""},
		{name: "no bearer prefix", authHeader: signed},
		{name: "wrong scheme", authHeader: "Basic " + signed},
		{name: "garbage token", authHeader: "Bearer garbage"},
		{name: "empty bearer", authHeader: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatalf("next handler should not be called")
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/customer-items", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}

			handler := m.Middleware(next)
			handler.ServeHTTP(w, r)

			res := w.Result()
			if res.StatusCode != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusUnauthorized)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("content-type = %q, want application/json", ct)
			}
		})
	}
}
