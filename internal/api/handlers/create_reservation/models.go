package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-SalonReservations/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date     string `json:"date"` // "2025-10-15"
	Time     string `json:"time"` // "10:30"
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Date:     r.Date,
		Time:     r.Time,
		Name:     r.Name,
		LastName: r.LastName,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Date:      resp.Date,
		Time:      resp.Time,
		Name:      resp.Name,
		LastName:  resp.LastName,
		Phone:     resp.Phone,
		Email:     resp.Email,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339Nano),
	}
}
