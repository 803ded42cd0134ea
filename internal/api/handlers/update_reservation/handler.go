package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/api/middleware"
	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "недопустимая смена статуса"
	msgSlotNotAvailable   = "на эту дату и время уже есть бронирование"
	msgUpdated            = "бронирование обновлено"
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

// Handle PUT /api/v1/reservations/{id}
// Частичное обновление: status, name, lastName, phone, email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: id=%s, error=%v", id, err)
			handlers.RespondValidationError(w, msgInvalidData, verr.Details)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PUT /reservations/{id} - Invalid transition: id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrSlotNotAvailable):
			h.logger.Warn("PUT /reservations/{id} - Slot not available: id=%s", id)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())
	h.logger.Info("PUT /reservations/{id} - Reservation updated: id=%s, status=%s, admin=%s", id, reservation.Status, admin)
	handlers.RespondMessage(w, http.StatusOK, reservation, msgUpdated)
}
