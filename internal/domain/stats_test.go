package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)

	res := func(date string, status ReservationStatus) *Reservation {
		return &Reservation{Date: date, Time: "10:00", Status: status}
	}

	reservations := []*Reservation{
		res("2024-06-10", StatusConfirmed), // сегодня, ближайшее
		res("2024-06-10", StatusCancelled), // сегодня
		res("2024-06-12", StatusConfirmed), // ближайшее
		res("2024-06-17", StatusConfirmed), // граница окна, ближайшее
		res("2024-06-18", StatusConfirmed), // за окном
		res("2024-06-09", StatusConfirmed), // в прошлом
		res("2024-05-20", StatusCompleted), // прошлый месяц
		res("2024-05-31", StatusCompleted), // прошлый месяц
		res("2024-05-02", StatusCancelled), // прошлый месяц
		res("2024-07-01", StatusConfirmed), // следующий месяц
	}

	stats := ComputeStats(reservations, now)

	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 6, stats.Confirmed)
	assert.Equal(t, 2, stats.Cancelled)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 6, stats.CurrentMonth)
	assert.Equal(t, 3, stats.LastMonth)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 3, stats.Upcoming)
	assert.Equal(t, 2, stats.ByDate["2024-06-10"])
	assert.Equal(t, 1, stats.ByDate["2024-07-01"])
}

func TestComputeStats_LastMonthAtMonthEnd(t *testing.T) {
	now := time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC)

	stats := ComputeStats([]*Reservation{
		{Date: "2024-02-29", Status: StatusCompleted},
	}, now)

	assert.Equal(t, 1, stats.LastMonth)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.Equal(t, 0, stats.Total)
	assert.NotNil(t, stats.ByDate)
}
