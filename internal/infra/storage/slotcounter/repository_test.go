package slotcounter

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryBooking/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func counterRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "appointment", "counter", "created_at", "updated_at"})
}

func TestGetByAppointment_Found(t *testing.T) {
	repo, mock, _ := newRepo(t)
	hour := time.Date(2015, 3, 20, 10, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, appointment, counter, created_at, updated_at FROM appointment_slot_counters WHERE appointment = $1")).
		WithArgs(hour).
		WillReturnRows(counterRows().AddRow(7, hour, 2, now, now))

	counter, err := repo.GetByAppointment(context.Background(), hour)
	require.NoError(t, err)
	assert.Equal(t, int64(7), counter.ID)
	assert.Equal(t, 2, counter.Counter)
	assert.True(t, counter.Appointment.Equal(hour))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByAppointment_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)
	hour := time.Date(2015, 3, 20, 11, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM appointment_slot_counters").
		WithArgs(hour).
		WillReturnRows(counterRows())

	counter, err := repo.GetByAppointment(context.Background(), hour)
	assert.Nil(t, counter)
	assert.ErrorIs(t, err, ErrCounterNotFound)
}

func TestGetByAppointment_LocksInsideTransaction(t *testing.T) {
	repo, mock, db := newRepo(t)
	hour := time.Date(2015, 3, 20, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("WHERE appointment = \\$1 FOR UPDATE").
		WithArgs(hour).
		WillReturnRows(counterRows())

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.GetByAppointment(dbmetrics.WithTx(context.Background(), tx), hour)
	assert.ErrorIs(t, err, ErrCounterNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFullInRange(t *testing.T) {
	repo, mock, _ := newRepo(t)
	from := time.Date(2015, 3, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2015, 3, 22, 23, 59, 59, 0, time.UTC)
	h1 := time.Date(2015, 3, 18, 8, 0, 0, 0, time.UTC)
	h2 := time.Date(2015, 3, 18, 9, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM appointment_slot_counters WHERE appointment >= $1 AND appointment <= $2 AND counter >= $3 ORDER BY appointment ASC")).
		WithArgs(from, to, 2).
		WillReturnRows(counterRows().
			AddRow(1, h1, 2, now, now).
			AddRow(2, h2, 3, now, now))

	counters, err := repo.GetFullInRange(context.Background(), from, to, 2)
	require.NoError(t, err)
	require.Len(t, counters, 2)
	assert.True(t, counters[0].Appointment.Equal(h1))
	assert.Equal(t, 3, counters[1].Counter)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFullInRange_QueryError(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("FROM appointment_slot_counters").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetFullInRange(context.Background(), time.Now(), time.Now(), 2)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestIncrement(t *testing.T) {
	repo, mock, _ := newRepo(t)
	hour := time.Date(2015, 3, 20, 10, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO appointment_slot_counters (appointment,counter) VALUES ($1,$2) " +
			"ON CONFLICT (appointment) DO UPDATE SET counter = appointment_slot_counters.counter + 1")).
		WithArgs(hour, 1).
		WillReturnRows(counterRows().AddRow(3, hour, 2, now, now))

	counter, err := repo.Increment(context.Background(), hour)
	require.NoError(t, err)
	assert.Equal(t, 2, counter.Counter)
	require.NoError(t, mock.ExpectationsWereMet())
}
