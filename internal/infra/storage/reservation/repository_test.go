package reservation

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
	"github.com/m04kA/SMC-SalonReservations/pkg/dbmetrics"
)

func newTestRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func testReservation() *domain.Reservation {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		Date:      "2024-06-15",
		Time:      "14:00",
		Name:      "Anna",
		LastName:  "Petrova",
		Phone:     "+7 900 123-45-67",
		Email:     "anna@example.com",
		Status:    domain.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func reservationRows(reservations ...*domain.Reservation) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns)
	for _, r := range reservations {
		rows.AddRow(r.ID, r.Date, r.Time, r.Name, r.LastName, r.Phone, r.Email, string(r.Status), r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	r := testReservation()

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(sqlmock.AnyArg(), r.Date, r.Time, r.Name, r.LastName, r.Phone, r.Email, "confirmed", r.CreatedAt, r.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), r)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(created.ID)
	assert.NoError(t, parseErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23505", Constraint: activeSlotIndex})

	_, err := repo.Create(context.Background(), testReservation())
	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OtherError(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec("INSERT INTO reservations").WillReturnError(assert.AnError)

	_, err := repo.Create(context.Background(), testReservation())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	r := testReservation()
	r.ID = uuid.NewString()

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1$").
		WithArgs(r.ID).
		WillReturnRows(reservationRows(r))

	got, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	id := uuid.NewString()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_GetByID_MalformedID(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksInTransaction(t *testing.T) {
	repo, db, mock := newTestRepository(t)
	r := testReservation()
	r.ID = uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1 FOR UPDATE").
		WithArgs(r.ID).
		WillReturnRows(reservationRows(r))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	_, err = repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveBySlot(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	r := testReservation()
	r.ID = uuid.NewString()

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE (.+) AND status <> \\$3 LIMIT 1").
		WithArgs(r.Date, r.Time, "cancelled").
		WillReturnRows(reservationRows(r))

	got, err := repo.FindActiveBySlot(context.Background(), r.Date, r.Time)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.FindActiveBySlot(context.Background(), "2024-06-16", "10:00")
	assert.ErrorIs(t, err, ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.ReservationFilter
		queryLike string
		args      []driver.Value
	}{
		{
			name:      "no filter",
			filter:    domain.ReservationFilter{},
			queryLike: "SELECT (.+) FROM reservations ORDER BY reservation_date ASC, reservation_time ASC",
		},
		{
			name: "date and status",
			filter: domain.ReservationFilter{
				Date:   strPtr("2024-06-15"),
				Status: statusPtr(domain.StatusConfirmed),
			},
			queryLike: "WHERE reservation_date = \\$1 AND status = \\$2 ORDER BY",
			args:      []driver.Value{"2024-06-15", "confirmed"},
		},
		{
			name: "range only start",
			filter: domain.ReservationFilter{
				StartDate: strPtr("2024-06-01"),
			},
			queryLike: "WHERE reservation_date >= \\$1 ORDER BY",
			args:      []driver.Value{"2024-06-01"},
		},
		{
			name: "full range",
			filter: domain.ReservationFilter{
				StartDate: strPtr("2024-06-01"),
				EndDate:   strPtr("2024-06-30"),
			},
			queryLike: "WHERE reservation_date >= \\$1 AND reservation_date <= \\$2 ORDER BY",
			args:      []driver.Value{"2024-06-01", "2024-06-30"},
		},
		{
			name: "date combined with range",
			filter: domain.ReservationFilter{
				Date:      strPtr("2024-06-15"),
				Status:    statusPtr(domain.StatusCancelled),
				StartDate: strPtr("2024-06-01"),
				EndDate:   strPtr("2024-06-30"),
			},
			queryLike: "WHERE reservation_date = \\$1 AND status = \\$2 AND reservation_date >= \\$3 AND reservation_date <= \\$4 ORDER BY",
			args:      []driver.Value{"2024-06-15", "cancelled", "2024-06-01", "2024-06-30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newTestRepository(t)
			first := testReservation()
			first.ID = uuid.NewString()
			second := testReservation()
			second.ID = uuid.NewString()
			second.Time = "15:00"

			expect := mock.ExpectQuery(tt.queryLike)
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(reservationRows(first, second))

			got, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "14:00", got[0].Time)
			assert.Equal(t, "15:00", got[1].Time)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List_Empty(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM reservations").WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), domain.ReservationFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	r := testReservation()
	r.ID = uuid.NewString()
	r.Status = domain.StatusCompleted

	mock.ExpectExec("UPDATE reservations SET (.+) WHERE id = \\$7").
		WithArgs(r.Name, r.LastName, r.Phone, r.Email, "completed", r.UpdatedAt, r.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), r))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newTestRepository(t)
		r := testReservation()
		r.ID = uuid.NewString()

		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), r), ErrReservationNotFound)
	})

	t.Run("slot taken on reactivation", func(t *testing.T) {
		repo, _, mock := newTestRepository(t)
		r := testReservation()
		r.ID = uuid.NewString()

		mock.ExpectExec("UPDATE reservations").
			WillReturnError(&pq.Error{Code: "23505", Constraint: activeSlotIndex})

		assert.ErrorIs(t, repo.Update(context.Background(), r), ErrSlotTaken)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM reservations WHERE id = \\$1").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec("DELETE FROM reservations").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrReservationNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), "bad-id"), ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsActiveSlotViolation(t *testing.T) {
	assert.True(t, isActiveSlotViolation(&pq.Error{Code: "23505", Constraint: activeSlotIndex}))
	assert.True(t, isActiveSlotViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isActiveSlotViolation(&pq.Error{Code: "23505", Constraint: "reservations_pkey"}))
	assert.False(t, isActiveSlotViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isActiveSlotViolation(assert.AnError))
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.ReservationStatus) *domain.ReservationStatus { return &s }
