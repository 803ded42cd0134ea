package domain

import "fmt"

// DailySlots возвращает фиксированное расписание дня по возрастанию: 10:00, 10:30, ..., 18:30
func DailySlots() []string {
	slots := make([]string, 0, SlotsPerDay)
	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		for minute := 0; minute < 60; minute += SlotDurationMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// IsValidSlot проверяет, что время совпадает с одним из слотов расписания
func IsValidSlot(t string) bool {
	for _, slot := range DailySlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// FreeSlots вычитает занятое время из расписания, сохраняя порядок
func FreeSlots(taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	free := make([]string, 0, SlotsPerDay)
	for _, slot := range DailySlots() {
		if _, ok := takenSet[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free
}
