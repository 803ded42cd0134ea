package create_reservation

import (
	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// validateRequest проверяет все поля запроса и собирает все нарушения сразу
func validateRequest(req *Request) error {
	verr := &domain.ValidationError{}

	verr.Add(domain.CheckDate(req.Date))
	verr.Add(domain.CheckTime(req.Time))
	verr.Add(domain.CheckName(req.Name))
	verr.Add(domain.CheckLastName(req.LastName))
	verr.Add(domain.CheckPhone(req.Phone))
	verr.Add(domain.CheckEmail(req.Email))

	return verr.OrNil()
}
