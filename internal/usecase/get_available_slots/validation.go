package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if !domain.IsValidDate(req.Date) {
		return fmt.Errorf("%w: %q is not a calendar date in YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	return nil
}
