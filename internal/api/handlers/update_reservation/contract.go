package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-SalonReservations/internal/service/reservations/models"
)

type ReservationService interface {
	Update(ctx context.Context, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
