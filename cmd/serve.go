package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adminLoginHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/admin_logout"
	cancelReservationHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/delete_reservation"
	exportReservationsHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/export_reservations"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/get_reservation"
	getStatsHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/get_stats"
	healthHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/health"
	listReservationsHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/list_reservations"
	updateReservationHandler "github.com/m04kA/SMC-SalonReservations/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-SalonReservations/internal/infra/storage/migrations"
	reservationRepo "github.com/m04kA/SMC-SalonReservations/internal/infra/storage/reservation"
	authService "github.com/m04kA/SMC-SalonReservations/internal/service/auth"
	reservationsService "github.com/m04kA/SMC-SalonReservations/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-SalonReservations/internal/usecase/create_reservation"
	exportReservationsUC "github.com/m04kA/SMC-SalonReservations/internal/usecase/export_reservations"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonReservations/internal/usecase/get_available_slots"
	getStatsUC "github.com/m04kA/SMC-SalonReservations/internal/usecase/get_stats"
	"github.com/m04kA/SMC-SalonReservations/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonReservations/pkg/metrics"
	"github.com/m04kA/SMC-SalonReservations/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "apply database migrations on startup")
	return cmd
}

func serve(configPath string, migrateUp bool) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-SalonReservations...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	sqlDB, err := openDB(cfg.Database, log)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer sqlDB.Close()

	// Без коллектора обёртка прозрачна
	db := dbmetrics.WrapWithDefault(sqlDB, metricsCollector, stopMetricsCh)

	if migrateUp {
		applied, err := migrations.Up(ctx, db, log)
		if err != nil {
			log.Error("Failed to apply migrations: %v", err)
			return err
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Репозитории и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, metricsCollector, log)
	authSvc := authService.NewService(authService.Config{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
		HashKey:      cfg.Admin.HashKey(),
		BlockKey:     cfg.Admin.BlockKey(),
		TTL:          cfg.Admin.SessionTTL(),
	}, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservationRepository, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationRepository, log)
	getStatsUseCase := getStatsUC.NewUseCase(reservationRepository, log)
	exportReservationsUseCase := exportReservationsUC.NewUseCase(reservationRepository, log)

	// Handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getStats := getStatsHandler.NewHandler(getStatsUseCase, log)
	exportReservations := exportReservationsHandler.NewHandler(exportReservationsUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, adminLoginHandler.CookieOptions{
		Secure: cfg.Admin.CookieSecure,
		TTL:    authSvc.TTL(),
	}, log)
	adminLogout := adminLogoutHandler.NewHandler(log)
	health := healthHandler.NewHandler(db, log)

	r := newRouter(routeHandlers{
		AvailableSlots:    getAvailableSlots.Handle,
		CreateReservation: createReservation.Handle,
		AdminLogin:        adminLogin.Handle,
		AdminLogout:       adminLogout.Handle,
		Health:            health.Handle,
		ListReservations:  listReservations.Handle,
		GetReservation:    getReservation.Handle,
		UpdateReservation: updateReservation.Handle,
		CancelReservation: cancelReservation.Handle,
		DeleteReservation: deleteReservation.Handle,
		Stats:             getStats.Handle,
		Export:            exportReservations.Handle,
	}, authSvc, metricsCollector, cfg.Metrics.Path, log)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
