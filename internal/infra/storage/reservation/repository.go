package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	"github.com/m04kA/SMC-SalonReservations/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonReservations/pkg/psqlbuilder"
)

const (
	tableName = "reservations"

	// activeSlotIndex частичный уникальный индекс (date, time) WHERE status <> 'cancelled'
	activeSlotIndex = "ux_reservations_active_slot"

	pgUniqueViolation = "23505"
)

var columns = []string{
	"id",
	"reservation_date",
	"reservation_time",
	"name",
	"last_name",
	"phone",
	"email",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование и присваивает ему ID
// Если слот уже занят неотменённым бронированием, уникальный индекс отклоняет вставку
// и метод возвращает ErrSlotTaken. Это единственный надёжный источник конфликта
// для параллельных запросов на один слот.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	reservation.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			reservation.ID,
			reservation.Date,
			reservation.Time,
			reservation.Name,
			reservation.LastName,
			reservation.Phone,
			reservation.Email,
			string(reservation.Status),
			reservation.CreatedAt,
			reservation.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrReservationNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// FindActiveBySlot ищет неотменённое бронирование на дату и время
// Возвращает ErrReservationNotFound, если слот свободен
func (r *Repository) FindActiveBySlot(ctx context.Context, date, timeSlot string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"reservation_date": date, "reservation_time": timeSlot}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает бронирования по фильтру, отсортированные по дате и времени (ASC)
//
// Примеры:
//
// 1. Все бронирования:
//    filter := domain.ReservationFilter{}
//
// 2. Подтверждённые на дату (расчёт свободных слотов):
//    filter := domain.ReservationFilter{Date: &date, Status: &confirmed}
//
// 3. За период:
//    filter := domain.ReservationFilter{StartDate: &from, EndDate: &to}
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	// Все заданные условия объединяются через AND, период не заменяет date
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	// Даты в формате YYYY-MM-DD сравниваются лексикографически корректно
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.
		OrderBy("reservation_date ASC", "reservation_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update сохраняет изменяемые поля бронирования (статус, контакты, updated_at)
// Повторная активация отменённого бронирования на занятый слот возвращает ErrSlotTaken
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", reservation.Name).
		Set("last_name", reservation.LastName).
		Set("phone", reservation.Phone).
		Set("email", reservation.Email).
		Set("status", string(reservation.Status)).
		Set("updated_at", reservation.UpdatedAt).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isActiveSlotViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование физически
// Для освобождения слота с сохранением истории используется отмена (status = cancelled)
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrReservationNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var status string

	err := row.Scan(
		&reservation.ID,
		&reservation.Date,
		&reservation.Time,
		&reservation.Name,
		&reservation.LastName,
		&reservation.Phone,
		&reservation.Email,
		&status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Status = domain.ReservationStatus(status)
	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// isActiveSlotViolation распознаёт нарушение уникального индекса активного слота
func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation && (pqErr.Constraint == "" || pqErr.Constraint == activeSlotIndex)
}
