package export_reservations

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	exportReservations "github.com/m04kA/SMC-SalonReservations/internal/usecase/export_reservations"
)

const (
	msgInvalidParams = "некорректные параметры выгрузки"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	useCase ExportReservationsUseCase
	logger  Logger
}

func NewHandler(useCase ExportReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations/export
// Query params (опциональны): startDate, endDate, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &exportReservations.Request{
		StartDate: handlers.OptionalQuery(r, "startDate"),
		EndDate:   handlers.OptionalQuery(r, "endDate"),
		Status:    handlers.OptionalQuery(r, "status"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, exportReservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations/export - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/reservations/export - Failed to export: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations/export - Exported %d reservations to %s", result.Count, result.FileName)

	handlers.SetNoCacheHeaders(w)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /admin/reservations/export - Failed to write response: %v", err)
	}
}
