package get_stats

import (
	"net/http"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
)

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats computed: total=%d", result.Total)
	handlers.SetNoCacheHeaders(w)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
