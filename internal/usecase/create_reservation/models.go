package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Name     string
	LastName string
	Phone    string
	Email    string // опционально
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	Date      string
	Time      string
	Name      string
	LastName  string
	Phone     string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
