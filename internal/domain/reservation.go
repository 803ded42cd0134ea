package domain

import "time"

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation бронирование слота в салоне
type Reservation struct {
	ID        string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, один из слотов расписания
	Name      string
	LastName  string
	Phone     string
	Email     string // пустая строка, если не указан
	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsSlot возвращает true, если бронирование занимает свой слот
// Слот освобождается только отменой
func (r *Reservation) HoldsSlot() bool {
	return r.Status != StatusCancelled
}

// IsConfirmed возвращает true для подтверждённого бронирования
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// CanTransitionTo проверяет, разрешён ли переход в статус to
func (r *Reservation) CanTransitionTo(to ReservationStatus) bool {
	return CanTransition(r.Status, to)
}

// ReservationFilter фильтр списка бронирований
// Все заданные условия объединяются через AND
type ReservationFilter struct {
	Date      *string            // точная дата
	Status    *ReservationStatus // точный статус
	StartDate *string            // начало периода включительно
	EndDate   *string            // конец периода включительно
}

// ReservationPatch частичное обновление бронирования (nil - поле не меняется)
type ReservationPatch struct {
	Status   *ReservationStatus
	Name     *string
	LastName *string
	Phone    *string
	Email    *string
}

// IsEmpty возвращает true, если ни одно поле не задано
func (p ReservationPatch) IsEmpty() bool {
	return p.Status == nil && p.Name == nil && p.LastName == nil && p.Phone == nil && p.Email == nil
}
