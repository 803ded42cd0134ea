package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonReservations/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations/models"
)

// Service сервис администрирования бронирований
type Service struct {
	repo         ReservationRepository
	txManager    TransactionManager
	metrics      StatusMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// metrics может быть nil
func NewService(
	repo ReservationRepository,
	txManager TransactionManager,
	metrics StatusMetrics,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования по фильтру, отсортированные по дате и времени
//
// Примеры использования:
// - Все бронирования: List(ctx, &ListReservationsRequest{})
// - На дату: указать Date
// - За период: StartDate и/или EndDate (границы включительно)
// - Только отменённые: Status = "cancelled"
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]*models.ReservationResponse, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	reservations, err := s.repo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Update частично обновляет бронирование
// Выполняется в транзакции с блокировкой строки. Смена статуса проверяется
// по таблице переходов; повторная активация отменённого бронирования на
// занятый слот возвращает ErrSlotNotAvailable
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%s", id)

	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: validation failed for reservation id=%s: %v", id, err)
		return nil, err
	}

	return s.apply(ctx, "Update", id, patch)
}

// Cancel отменяет бронирование (status -> cancelled), освобождая слот
// Запись сохраняется; для физического удаления используется Delete
func (s *Service) Cancel(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	cancelled := domain.StatusCancelled
	return s.apply(ctx, "Cancel", id, domain.ReservationPatch{Status: &cancelled})
}

// Delete удаляет бронирование физически
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting reservation id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

func (s *Service) apply(ctx context.Context, op, id string, patch domain.ReservationPatch) (*models.ReservationResponse, error) {
	var (
		result        *domain.Reservation
		statusChanged bool
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: %s - get reservation: %v", ErrInternal, op, err)
		}

		if patch.Status != nil {
			if !reservation.CanTransitionTo(*patch.Status) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, *patch.Status)
			}
			statusChanged = reservation.Status != *patch.Status
			reservation.Status = *patch.Status
		}
		if patch.Name != nil {
			reservation.Name = *patch.Name
		}
		if patch.LastName != nil {
			reservation.LastName = *patch.LastName
		}
		if patch.Phone != nil {
			reservation.Phone = *patch.Phone
		}
		if patch.Email != nil {
			reservation.Email = *patch.Email
		}

		reservation.UpdatedAt = nextUpdatedAt(reservation.UpdatedAt, s.timeProvider.Now())

		if err := s.repo.Update(txCtx, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: %s - update reservation: %v", ErrInternal, op, err)
		}

		result = reservation
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("%s: reservation id=%s not found", op, id)
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrSlotNotAvailable):
			s.logger.Warn("%s: reservation id=%s rejected: %v", op, id, err)
		default:
			s.logger.Error("%s: failed for reservation id=%s: %v", op, id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %s - transaction: %v", ErrInternal, op, err)
			}
		}
		return nil, err
	}

	if statusChanged && s.metrics != nil {
		s.metrics.IncStatusChange(string(result.Status))
	}

	s.logger.Info("%s: reservation id=%s saved, status=%s", op, id, result.Status)
	return models.FromDomainReservation(result), nil
}

// nextUpdatedAt возвращает новое значение updated_at, строго большее предыдущего
// Точность ограничена микросекундами (точность TIMESTAMPTZ)
func nextUpdatedAt(prev, now time.Time) time.Time {
	now = now.Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
