package export_reservations

import (
	"fmt"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// validateRequest валидирует период и статус
func validateRequest(req *Request) error {
	if req.StartDate != nil && !domain.IsValidDate(*req.StartDate) {
		return fmt.Errorf("%w: startDate %q", ErrInvalidInput, *req.StartDate)
	}
	if req.EndDate != nil && !domain.IsValidDate(*req.EndDate) {
		return fmt.Errorf("%w: endDate %q", ErrInvalidInput, *req.EndDate)
	}
	if req.StartDate != nil && req.EndDate != nil && *req.StartDate > *req.EndDate {
		return fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}
	if req.Status != nil {
		if _, ok := domain.ParseStatus(*req.Status); !ok {
			return fmt.Errorf("%w: status %q", ErrInvalidInput, *req.Status)
		}
	}
	return nil
}
