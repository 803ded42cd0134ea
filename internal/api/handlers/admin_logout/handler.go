package admin_logout

import (
	"net/http"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/service/auth"
)

const msgLoggedOut = "выход выполнен"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/admin/logout
// Токены не хранятся на сервере, поэтому выход только очищает cookie
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/logout - Session cookie cleared")
	handlers.RespondMessage(w, http.StatusOK, nil, msgLoggedOut)
}
