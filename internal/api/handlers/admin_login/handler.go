package admin_login

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "логин и пароль обязательны"
	msgInvalidCredentials = "неверный логин или пароль"
	msgLoggedIn           = "вход выполнен"
)

type Handler struct {
	service AuthService
	cookie  CookieOptions
	logger  Logger
}

func NewHandler(service AuthService, cookie CookieOptions, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
// Токен возвращается в теле и дублируется в HttpOnly cookie
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		h.logger.Warn("POST /admin/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	session, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials: username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure || r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/login - Admin logged in: username=%q", req.Username)
	handlers.RespondMessage(w, http.StatusOK, &LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	}, msgLoggedIn)
}
