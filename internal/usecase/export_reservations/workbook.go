package export_reservations

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

const (
	sheetReservations = "Reservations"
	sheetSummary      = "Summary"
	defaultSheet      = "Sheet1"

	timestampLayout = "2006-01-02 15:04"
)

var reservationHeaders = []string{
	"Date", "Time", "Name", "Last name", "Phone", "Email", "Status", "Created at", "Updated at", "ID",
}

// Цвета заливки строк по статусу
var statusFill = map[domain.ReservationStatus]string{
	domain.StatusConfirmed: "#C6EFCE",
	domain.StatusCancelled: "#FFC7CE",
	domain.StatusCompleted: "#DDEBF7",
}

// buildWorkbook собирает книгу из двух листов: бронирования и количество по датам
// При ошибке книга закрывается, вызывающий получает nil
func buildWorkbook(reservations []*domain.Reservation, period string) (f *excelize.File, err error) {
	f = excelize.NewFile()
	defer func() {
		if err != nil {
			_ = f.Close()
			f = nil
		}
	}()

	index, err := f.NewSheet(sheetReservations)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeReservations(f, reservations); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := writeSummary(f, reservations, period); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	return f, nil
}

func writeReservations(f *excelize.File, reservations []*domain.Reservation) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range reservationHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetReservations, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(reservationHeaders), 1)
	if err := f.SetCellStyle(sheetReservations, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	rowStyles := make(map[domain.ReservationStatus]int, len(statusFill))
	for status, color := range statusFill {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("create status style: %w", err)
		}
		rowStyles[status] = style
	}

	for i, r := range reservations {
		row := i + 2
		values := []interface{}{
			r.Date,
			r.Time,
			r.Name,
			r.LastName,
			r.Phone,
			r.Email,
			string(r.Status),
			r.CreatedAt.Format(timestampLayout),
			r.UpdatedAt.Format(timestampLayout),
			r.ID,
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetReservations, first, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}

		if style, ok := rowStyles[r.Status]; ok {
			last, _ := excelize.CoordinatesToCellName(len(reservationHeaders), row)
			if err := f.SetCellStyle(sheetReservations, first, last, style); err != nil {
				return fmt.Errorf("style row %d: %w", row, err)
			}
		}
	}

	widths := map[string]float64{"A": 12, "B": 8, "C": 18, "D": 18, "E": 20, "F": 28, "G": 12, "H": 18, "I": 18, "J": 38}
	for col, width := range widths {
		if err := f.SetColWidth(sheetReservations, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	return nil
}

func writeSummary(f *excelize.File, reservations []*domain.Reservation, period string) error {
	byDate := make(map[string]int)
	for _, r := range reservations {
		byDate[r.Date]++
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := [][]interface{}{
		{"Period", period},
		{"Total", len(reservations)},
		{},
		{"Date", "Reservations"},
	}
	for _, date := range dates {
		rows = append(rows, []interface{}{date, byDate[date]})
	}

	for i, values := range rows {
		if len(values) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &values); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	return f.SetColWidth(sheetSummary, "A", "B", 16)
}
