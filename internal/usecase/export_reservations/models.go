package export_reservations

// Request параметры выгрузки (все поля опциональны)
type Request struct {
	StartDate *string
	EndDate   *string
	Status    *string
}

// Response готовый xlsx-файл
type Response struct {
	FileName string
	Content  []byte
	Count    int
}
