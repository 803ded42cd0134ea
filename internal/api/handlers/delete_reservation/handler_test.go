package delete_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonReservations/internal/api/middleware"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations"
	"github.com/m04kA/SMC-SalonReservations/pkg/logger"
)

type stubService struct {
	err    error
	lastID string
}

func (s *stubService) Delete(_ context.Context, id string) error {
	s.lastID = id
	return s.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"deleted", nil, http.StatusOK},
		{"not found", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"internal", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/abc", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "abc"})
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "abc", svc.lastID)
		})
	}
}

type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func TestHandler_LogsAdmin(t *testing.T) {
	log := &recordingLogger{}
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	req = req.WithContext(middleware.WithAdmin(req.Context(), "owner"))
	rec := httptest.NewRecorder()

	NewHandler(&stubService{}, log).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.Len(t, log.infos, 1) {
		assert.Contains(t, log.infos[0], "id=abc")
		assert.Contains(t, log.infos[0], "admin=owner")
	}
}
