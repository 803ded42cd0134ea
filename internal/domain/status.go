package domain

// allowedTransitions разрешённые переходы статусов
// Из completed выйти нельзя
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusConfirmed},
	StatusCompleted: {},
}

// AllStatuses список всех статусов
var AllStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseStatus конвертирует строку в статус с валидацией
func ParseStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// CanTransition проверяет переход from -> to
// Повторная установка текущего статуса считается допустимой (no-op)
func CanTransition(from, to ReservationStatus) bool {
	if from == to {
		_, ok := allowedTransitions[from]
		return ok
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
