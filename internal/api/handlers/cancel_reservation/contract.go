package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, id string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
