package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/api/middleware"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations"
)

const (
	msgNotFound     = "бронирование не найдено"
	msgCannotCancel = "бронирование не может быть отменено"
	msgCancelled    = "бронирование отменено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/cancel
// Мягкая отмена: запись сохраняется со статусом cancelled, слот освобождается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	reservation, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())
	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: id=%s, admin=%s", id, admin)
	handlers.RespondMessage(w, http.StatusOK, reservation, msgCancelled)
}
