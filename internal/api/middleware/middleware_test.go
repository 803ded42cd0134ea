package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonReservations/internal/service/auth"
	"github.com/m04kA/SMC-SalonReservations/pkg/logger"
	"github.com/m04kA/SMC-SalonReservations/pkg/metrics"
)

type stubValidator struct {
	valid string
}

func (s stubValidator) Validate(token string) (*auth.Claims, error) {
	if token != s.valid {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Username: "admin"}, nil
}

func protectedHandler() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, _ := GetAdmin(r.Context())
		w.Write([]byte(admin))
	})
	return AdminAuth(stubValidator{valid: "good"}, logger.NewNop())(next)
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantCode int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer ok", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK},
		{"bearer lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer good") }, http.StatusOK},
		{"bearer bad", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }, http.StatusUnauthorized},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }, http.StatusUnauthorized},
		{"cookie ok", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "good"}) }, http.StatusOK},
		{"cookie bad", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "bad"}) }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			protectedHandler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "admin", rec.Body.String())
			}
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/reservations/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/reservations/{id}", "404")))
}

func TestRecovery(t *testing.T) {
	handler := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
