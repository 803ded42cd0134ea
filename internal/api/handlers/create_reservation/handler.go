package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	createReservation "github.com/m04kA/SMC-SalonReservations/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные"
	msgSlotNotAvailable   = "на эту дату и время уже есть бронирование"
	msgCreated            = "бронирование создано"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidData, verr.Details)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, date=%s, time=%s", result.ID, result.Date, result.Time)
	handlers.RespondMessage(w, http.StatusCreated, FromUseCaseResponse(result), msgCreated)
}
