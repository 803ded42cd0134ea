package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations/models"
)

const msgInvalidFilter = "некорректные параметры фильтра"

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

// Handle GET /api/v1/reservations
// Query params (все опциональны, объединяются через AND): date, status, startDate, endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{
		Date:      handlers.OptionalQuery(r, "date"),
		Status:    handlers.OptionalQuery(r, "status"),
		StartDate: handlers.OptionalQuery(r, "startDate"),
		EndDate:   handlers.OptionalQuery(r, "endDate"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondValidationError(w, msgInvalidFilter, verr.Details)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved: count=%d", len(result))
	handlers.SetNoCacheHeaders(w)
	handlers.RespondJSON(w, http.StatusOK, result)
}
