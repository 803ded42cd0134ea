package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	repo   ReservationRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Из расписания дня вычитаются только подтверждённые бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем подтверждённые бронирования на дату
	confirmed := domain.StatusConfirmed
	reservations, err := uc.repo.List(ctx, domain.ReservationFilter{
		Date:   &req.Date,
		Status: &confirmed,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 3. Вычитаем занятое время из расписания
	taken := make([]string, 0, len(reservations))
	for _, r := range reservations {
		taken = append(taken, r.Time)
	}
	free := domain.FreeSlots(taken)

	uc.logger.Info("GetAvailableSlots: date=%s, available=%d of %d", req.Date, len(free), domain.SlotsPerDay)

	return &Response{
		Date:           req.Date,
		AvailableSlots: free,
		TotalSlots:     domain.SlotsPerDay,
		AvailableCount: len(free),
	}, nil
}
