package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SalonReservations/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	TotalSlots     int      `json:"totalSlots"`
	AvailableCount int      `json:"availableCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.AvailableSlots
	if slots == nil {
		slots = []string{}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date,
		AvailableSlots: slots,
		TotalSlots:     resp.TotalSlots,
		AvailableCount: resp.AvailableCount,
	}
}
