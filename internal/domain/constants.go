package domain

import "time"

// Расписание салона: слоты по 30 минут с 10:00 до 18:30 включительно
const (
	FirstSlotHour       = 10
	LastSlotHour        = 18 // последний слот 18:30
	SlotDurationMinutes = 30
	SlotsPerDay         = (LastSlotHour - FirstSlotHour + 1) * 60 / SlotDurationMinutes
)

// Ограничения на данные клиента
// Максимумы совпадают с размерами колонок таблицы reservations
const (
	MinNameLength  = 2
	MaxNameLength  = 100
	MinPhoneLength = 8
	MaxPhoneLength = 32
	MaxEmailLength = 255
)

// Форматы даты и времени
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// UpcomingWindowDays размер окна "ближайших" бронирований в днях (считая от сегодня)
const UpcomingWindowDays = 7

// ParseDate разбирает дату YYYY-MM-DD и проверяет, что она существует в календаре
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
