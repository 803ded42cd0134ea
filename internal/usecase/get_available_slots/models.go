package get_available_slots

// Request модель запроса свободных слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со свободными слотами
type Response struct {
	Date           string
	AvailableSlots []string // по возрастанию
	TotalSlots     int
	AvailableCount int
}
