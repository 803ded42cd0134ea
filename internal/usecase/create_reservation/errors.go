package create_reservation

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда на дату и время уже есть неотменённое бронирование
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
