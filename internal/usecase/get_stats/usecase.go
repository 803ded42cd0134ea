package get_stats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// UseCase use case для расчёта статистики бронирований
type UseCase struct {
	repo         ReservationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute пересчитывает статистику по всем бронированиям при каждом вызове
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	reservations, err := uc.repo.List(ctx, domain.ReservationFilter{})
	if err != nil {
		uc.logger.Error("GetStats: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	stats := domain.ComputeStats(reservations, now)

	uc.logger.Info("GetStats: total=%d, confirmed=%d, today=%d, upcoming=%d",
		stats.Total, stats.Confirmed, stats.Today, stats.Upcoming)

	return &Response{
		Total:        stats.Total,
		Confirmed:    stats.Confirmed,
		Cancelled:    stats.Cancelled,
		Completed:    stats.Completed,
		CurrentMonth: stats.CurrentMonth,
		LastMonth:    stats.LastMonth,
		Today:        stats.Today,
		Upcoming:     stats.Upcoming,
		ByDate:       stats.ByDate,
		GeneratedAt:  now,
	}, nil
}
