package get_stats

import (
	"time"

	getStats "github.com/m04kA/SMC-SalonReservations/internal/usecase/get_stats"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	Total        int            `json:"total"`
	Confirmed    int            `json:"confirmed"`
	Cancelled    int            `json:"cancelled"`
	Completed    int            `json:"completed"`
	CurrentMonth int            `json:"currentMonth"`
	LastMonth    int            `json:"lastMonth"`
	Today        int            `json:"today"`
	Upcoming     int            `json:"upcoming"`
	ByDate       map[string]int `json:"byDate"`
	GeneratedAt  string         `json:"generatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStats.Response) *StatsResponse {
	byDate := resp.ByDate
	if byDate == nil {
		byDate = map[string]int{}
	}

	return &StatsResponse{
		Total:        resp.Total,
		Confirmed:    resp.Confirmed,
		Cancelled:    resp.Cancelled,
		Completed:    resp.Completed,
		CurrentMonth: resp.CurrentMonth,
		LastMonth:    resp.LastMonth,
		Today:        resp.Today,
		Upcoming:     resp.Upcoming,
		ByDate:       byDate,
		GeneratedAt:  resp.GeneratedAt.Format(time.RFC3339),
	}
}
