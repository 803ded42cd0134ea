package export_reservations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном периоде или статусе
	ErrInvalidInput = errors.New("export_reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_reservations: internal error")
)
