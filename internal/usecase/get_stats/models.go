package get_stats

import "time"

// Response агрегированная статистика
type Response struct {
	Total        int
	Confirmed    int
	Cancelled    int
	Completed    int
	CurrentMonth int
	LastMonth    int
	Today        int
	Upcoming     int
	ByDate       map[string]int
	GeneratedAt  time.Time
}
