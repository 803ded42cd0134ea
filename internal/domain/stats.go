package domain

import "time"

// ReservationStats агрегированная статистика для админ-панели
type ReservationStats struct {
	Total        int
	Confirmed    int
	Cancelled    int
	Completed    int
	CurrentMonth int
	LastMonth    int
	Today        int
	Upcoming     int // подтверждённые с сегодня по сегодня+7 дней
	ByDate       map[string]int
}

// ComputeStats считает статистику по полному набору бронирований
// now задаёт "сегодня" в локали сервера
func ComputeStats(reservations []*Reservation, now time.Time) ReservationStats {
	today := now.Format(DateFormat)
	currentMonth := now.Format(MonthFormat)
	// AddDate(0, -1, 0) на 31-е число перескакивает месяц, поэтому считаем от первого дня
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -1, 0).Format(MonthFormat)
	upcomingEnd := now.AddDate(0, 0, UpcomingWindowDays).Format(DateFormat)

	stats := ReservationStats{
		Total:  len(reservations),
		ByDate: make(map[string]int),
	}

	for _, r := range reservations {
		switch r.Status {
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCancelled:
			stats.Cancelled++
		case StatusCompleted:
			stats.Completed++
		}

		month := ""
		if len(r.Date) >= len(MonthFormat) {
			month = r.Date[:len(MonthFormat)]
		}
		if month == currentMonth {
			stats.CurrentMonth++
		}
		if month == lastMonth {
			stats.LastMonth++
		}

		if r.Date == today {
			stats.Today++
		}

		if r.Status == StatusConfirmed && r.Date >= today && r.Date <= upcomingEnd {
			stats.Upcoming++
		}

		stats.ByDate[r.Date]++
	}

	return stats
}
