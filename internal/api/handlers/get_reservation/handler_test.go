package get_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonReservations/pkg/logger"
)

type stubService struct{ err error }

func (s *stubService) GetByID(_ context.Context, id string) (*models.ReservationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationResponse{ID: id, Date: "2024-06-15", Time: "10:00", Status: "confirmed"}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"found", nil, http.StatusOK},
		{"not found", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"internal", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/abc", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "abc"})
			rec := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.err}, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"id":"abc"`)
			}
		})
	}
}
