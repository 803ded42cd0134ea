package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-SalonReservations/internal/api/middleware"
	"github.com/m04kA/SMC-SalonReservations/pkg/metrics"
)

// routeHandlers обработчики всех эндпоинтов API
type routeHandlers struct {
	AvailableSlots    http.HandlerFunc
	CreateReservation http.HandlerFunc
	AdminLogin        http.HandlerFunc
	AdminLogout       http.HandlerFunc
	Health            http.HandlerFunc

	ListReservations  http.HandlerFunc
	GetReservation    http.HandlerFunc
	UpdateReservation http.HandlerFunc
	CancelReservation http.HandlerFunc
	DeleteReservation http.HandlerFunc
	Stats             http.HandlerFunc
	Export            http.HandlerFunc
}

// newRouter регистрирует маршруты API
// metricsCollector == nil отключает метрики и эндпоинт metricsPath
func newRouter(
	h routeHandlers,
	validator middleware.TokenValidator,
	metricsCollector *metrics.Metrics,
	metricsPath string,
	log middleware.Logger,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", metricsPath)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// available-slots регистрируется раньше /reservations/{id}
	// ============================================================

	api.HandleFunc("/reservations/available-slots", h.AvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/reservations", h.CreateReservation).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", h.AdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.AdminLogout).Methods(http.MethodPost)
	api.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer токен или cookie сессии)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(validator, log))

	admin.HandleFunc("/reservations", h.ListReservations).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", h.GetReservation).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", h.UpdateReservation).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{id}/cancel", h.CancelReservation).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", h.DeleteReservation).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/stats", h.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/admin/reservations/export", h.Export).Methods(http.MethodGet)

	return r
}
