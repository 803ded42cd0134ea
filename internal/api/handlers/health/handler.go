package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
)

const (
	msgDatabaseUnavailable = "база данных недоступна"

	pingTimeout = 2 * time.Second
)

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// StatusResponse HTTP response model
type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Handle GET /api/v1/healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /healthz - Database ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgDatabaseUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{Status: "ok", Database: "ok"})
}
