package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonReservations/internal/infra/storage/reservation"
)

// Результаты создания для метрики reservations_created_total
const (
	resultCreated  = "created"
	resultConflict = "conflict"
	resultInvalid  = "invalid"
	resultError    = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	repo         ReservationRepository
	metrics      CreateMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, metrics CreateMetrics, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Предварительная проверка слота отсекает очевидные конфликты, но гонку
// двух одновременных запросов закрывает уникальный индекс хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных до обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.observe(resultInvalid)
		return nil, err
	}

	// 2. Быстрая проверка занятости слота
	existing, err := uc.repo.FindActiveBySlot(ctx, req.Date, req.Time)
	switch {
	case err == nil:
		uc.logger.Warn("CreateReservation: slot %s %s already taken by reservation id=%s", req.Date, req.Time, existing.ID)
		uc.observe(resultConflict)
		return nil, ErrSlotNotAvailable
	case !errors.Is(err, reservationRepo.ErrReservationNotFound):
		uc.logger.Error("CreateReservation: failed to check slot %s %s: %v", req.Date, req.Time, err)
		uc.observe(resultError)
		return nil, fmt.Errorf("%w: check slot: %v", ErrInternal, err)
	}

	// 3. Создаём бронирование
	now := uc.timeProvider.Now().Truncate(time.Microsecond)
	reservation := &domain.Reservation{
		Date:      req.Date,
		Time:      req.Time,
		Name:      strings.TrimSpace(req.Name),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Status:    domain.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.repo.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot %s %s taken concurrently", req.Date, req.Time)
			uc.observe(resultConflict)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		uc.observe(resultError)
		return nil, fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
	}

	uc.observe(resultCreated)
	uc.logger.Info("CreateReservation: reservation id=%s created for %s %s", created.ID, created.Date, created.Time)

	return toResponse(created), nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.IncReservationCreated(result)
	}
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:        r.ID,
		Date:      r.Date,
		Time:      r.Time,
		Name:      r.Name,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
