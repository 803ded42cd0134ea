package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	getAvailableSlots "github.com/m04kA/SMC-SalonReservations/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonReservations/pkg/logger"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return s.resp, s.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		uc       *stubUseCase
		wantCode int
		wantBody string
	}{
		{
			name:  "ok",
			query: "?date=2024-06-15",
			uc: &stubUseCase{resp: &getAvailableSlots.Response{
				Date: "2024-06-15", AvailableSlots: []string{"10:00", "10:30"}, TotalSlots: 18, AvailableCount: 2,
			}},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"data":{"date":"2024-06-15","availableSlots":["10:00","10:30"],"totalSlots":18,"availableCount":2}}`,
		},
		{
			name:  "fully booked",
			query: "?date=2024-06-15",
			uc: &stubUseCase{resp: &getAvailableSlots.Response{
				Date: "2024-06-15", TotalSlots: 18,
			}},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"data":{"date":"2024-06-15","availableSlots":[],"totalSlots":18,"availableCount":0}}`,
		},
		{name: "missing date", query: "", uc: &stubUseCase{}, wantCode: http.StatusBadRequest},
		{name: "invalid date", query: "?date=2024-13-40", uc: &stubUseCase{err: getAvailableSlots.ErrInvalidDate}, wantCode: http.StatusBadRequest},
		{name: "internal", query: "?date=2024-06-15", uc: &stubUseCase{err: getAvailableSlots.ErrInternal}, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.uc, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/available-slots"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
