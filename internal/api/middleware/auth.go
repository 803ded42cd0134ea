package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/service/auth"
)

const msgUnauthorized = "требуется авторизация администратора"

type adminKey struct{}

// TokenValidator проверка токена сессии администратора
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с действующим токеном администратора
// Токен берётся из заголовка "Authorization: Bearer <token>", иначе из cookie сессии
func AdminAuth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				logger.Warn("%s %s - Rejected admin token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), claims.Username)))
		})
	}
}

// WithAdmin кладёт имя администратора в контекст
func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey{}, username)
}

// GetAdmin возвращает имя администратора, прошедшего AdminAuth
func GetAdmin(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminKey{}).(string)
	return username, ok
}

func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		return cookie.Value
	}

	return ""
}
