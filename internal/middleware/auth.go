// Package middleware содержит HTTP middleware для сервиса customer-api.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mmeshcher/customer-api/internal/token"
)

type contextKey string

const claimsKey contextKey = "tokenClaims"

const bearerPrefix = "Bearer "

// AuthMiddleware выполняет проверку аутентификации по bearer-токену
// из заголовка Authorization.
type AuthMiddleware struct {
	validator *token.Validator
	logger    *zap.Logger
}

// NewAuthMiddleware создаёт новый экземпляр AuthMiddleware с указанным валидатором токенов.
func NewAuthMiddleware(validator *token.Validator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// Middleware проверяет bearer-токен и добавляет его полезную нагрузку в контекст запроса.
// Любой отказ проверки отдаётся клиенту как 401 с общим сообщением; конкретная
// причина попадает только в лог. Значения токена и секрета в лог не пишутся.
func (a *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			a.logger.Info("request rejected: bearer token missing",
				zap.String("path", r.URL.Path),
				zap.Bool("token_present", false),
			)
			writeAuthError(w, "Token not provided or invalid format")
			return
		}

		claims, err := a.validator.Validate(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			a.logger.Info("request rejected: token validation failed",
				zap.String("path", r.URL.Path),
				zap.Bool("token_present", true),
				zap.String("reason", validationReason(err)),
			)
			writeAuthError(w, "Token is invalid or expired")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, token.ErrMissingToken):
		return "missing"
	case errors.Is(err, token.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, token.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrNotYetValid):
		return "not_yet_valid"
	default:
		return "unknown"
	}
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// GetClaimsFromContext извлекает полезную нагрузку токена из контекста запроса.
func GetClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}
