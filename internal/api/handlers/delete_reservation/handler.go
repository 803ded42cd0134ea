package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/api/middleware"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations"
)

const (
	msgNotFound = "бронирование не найдено"
	msgDeleted  = "бронирование удалено"
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

// Handle DELETE /api/v1/reservations/{id}
// Физическое удаление записи; для освобождения слота с сохранением истории
// используется PATCH /reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())
	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: id=%s, admin=%s", id, admin)
	handlers.RespondMessage(w, http.StatusOK, nil, msgDeleted)
}
