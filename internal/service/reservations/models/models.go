package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// Request модели

// ListReservationsRequest фильтр списка бронирований (все поля опциональны)
type ListReservationsRequest struct {
	Date      *string `json:"date,omitempty"`
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// Validate проверяет значения фильтра
func (r *ListReservationsRequest) Validate() error {
	verr := &domain.ValidationError{}
	for _, date := range []*string{r.Date, r.StartDate, r.EndDate} {
		if date != nil {
			verr.Add(domain.CheckDate(*date))
		}
	}
	if r.Status != nil {
		if _, ok := domain.ParseStatus(*r.Status); !ok {
			verr.Add(domain.MsgInvalidStatus)
		}
	}
	return verr.OrNil()
}

// ToDomainFilter конвертирует request в domain фильтр
// Вызывается после Validate
func (r *ListReservationsRequest) ToDomainFilter() domain.ReservationFilter {
	filter := domain.ReservationFilter{
		Date:      r.Date,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}

// UpdateReservationRequest частичное обновление бронирования
// Поля, не переданные в запросе, не меняются
type UpdateReservationRequest struct {
	Status   *string `json:"status,omitempty"`
	Name     *string `json:"name,omitempty"`
	LastName *string `json:"lastName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ToDomainPatch валидирует запрос и конвертирует его в domain патч
// Значения полей обрезаются от пробелов
func (r *UpdateReservationRequest) ToDomainPatch() (domain.ReservationPatch, error) {
	var patch domain.ReservationPatch
	verr := &domain.ValidationError{}

	if r.Status != nil {
		status, ok := domain.ParseStatus(*r.Status)
		if !ok {
			verr.Add(domain.MsgInvalidStatus)
		} else {
			patch.Status = &status
		}
	}
	if r.Name != nil {
		verr.Add(domain.CheckName(*r.Name))
		patch.Name = trimmed(*r.Name)
	}
	if r.LastName != nil {
		verr.Add(domain.CheckLastName(*r.LastName))
		patch.LastName = trimmed(*r.LastName)
	}
	if r.Phone != nil {
		verr.Add(domain.CheckPhone(*r.Phone))
		patch.Phone = trimmed(*r.Phone)
	}
	if r.Email != nil {
		verr.Add(domain.CheckEmail(*r.Email))
		patch.Email = trimmed(*r.Email)
	}

	if verr.OrNil() == nil && patch.IsEmpty() {
		verr.Add(domain.MsgEmptyUpdate)
	}

	if err := verr.OrNil(); err != nil {
		return domain.ReservationPatch{}, err
	}
	return patch, nil
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // "2025-10-15"
	Time      string    `json:"time"` // "10:30"
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		Date:      r.Date,
		Time:      r.Time,
		Name:      r.Name,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
// Пустой список сериализуется как [], а не null
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}
