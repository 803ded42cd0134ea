package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonReservations/internal/api/handlers"
	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	createReservation "github.com/m04kA/SMC-SalonReservations/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SalonReservations/pkg/logger"
)

type stubUseCase struct {
	resp    *createReservation.Response
	err     error
	lastReq *createReservation.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createReservation.Response{
		ID: "id-1", Date: "2024-06-15", Time: "14:00", Name: "Anna", LastName: "Petrova",
		Phone: "+79001234567", Status: "confirmed", CreatedAt: now, UpdatedAt: now,
	}}

	rec := doRequest(t, uc, `{"date":"2024-06-15","time":"14:00","name":"Anna","lastName":"Petrova","phone":"+79001234567"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Petrova", uc.lastReq.LastName)
	assert.Equal(t, "", uc.lastReq.Email)

	var body struct {
		Success bool                `json:"success"`
		Data    ReservationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "id-1", body.Data.ID)
	assert.Equal(t, "confirmed", body.Data.Status)
	assert.Equal(t, "2024-06-10T09:00:00Z", body.Data.CreatedAt)
}

func TestHandler_ValidationDetails(t *testing.T) {
	uc := &stubUseCase{err: domain.NewValidationError(domain.MsgInvalidDate, domain.MsgInvalidPhone)}

	rec := doRequest(t, uc, `{"date":"2024-13-40","time":"14:00","name":"Anna","lastName":"Petrova","phone":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, []string{domain.MsgInvalidDate, domain.MsgInvalidPhone}, body.Details)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"empty body", ``, nil, http.StatusBadRequest},
		{"conflict", `{"date":"2024-06-15","time":"14:00"}`, createReservation.ErrSlotNotAvailable, http.StatusConflict},
		{"internal", `{"date":"2024-06-15","time":"14:00"}`, createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
