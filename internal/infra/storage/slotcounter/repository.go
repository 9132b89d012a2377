package slotcounter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	"github.com/m04kA/SMC-LaundryBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-LaundryBooking/pkg/psqlbuilder"
)

const table = "appointment_slot_counters"

var columns = []string{
	"id",
	"appointment",
	"counter",
	"created_at",
	"updated_at",
}

// Repository репозиторий счетчиков заказов по часам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счетчиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByAppointment получает счетчик для конкретного часа
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByAppointment(ctx context.Context, appointment time.Time) (*domain.AppointmentSlotCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"appointment": appointment})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	counter, err := scanCounter(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCounterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAppointment - scan counter: %v", ErrScanRow, err)
	}

	return counter, nil
}

// GetFullInRange получает счетчики в диапазоне [from, to], достигшие потолка
// Результат отсортирован по времени
func (r *Repository) GetFullInRange(ctx context.Context, from, to time.Time, maxAppointmentsPerHour int) ([]*domain.AppointmentSlotCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"appointment": from}).
		Where(squirrel.LtOrEq{"appointment": to}).
		Where(squirrel.GtOrEq{"counter": maxAppointmentsPerHour}).
		OrderBy("appointment ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFullInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFullInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counters := make([]*domain.AppointmentSlotCounter, 0)
	for rows.Next() {
		counter, err := scanCounter(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetFullInRange - scan row: %v", ErrScanRow, err)
		}
		counters = append(counters, counter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetFullInRange - rows error: %v", ErrScanRow, err)
	}

	return counters, nil
}

// Increment атомарно увеличивает счетчик часа на единицу
// Если записи нет, создает её со значением 1
func (r *Repository) Increment(ctx context.Context, appointment time.Time) (*domain.AppointmentSlotCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("appointment", "counter").
		Values(appointment, 1).
		Suffix("ON CONFLICT (appointment) DO UPDATE SET counter = " + table + ".counter + 1, updated_at = NOW() " +
			"RETURNING id, appointment, counter, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Increment - build upsert query: %v", ErrBuildQuery, err)
	}

	counter, err := scanCounter(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Increment - execute upsert: %v", ErrExecQuery, err)
	}

	return counter, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCounter(row rowScanner) (*domain.AppointmentSlotCounter, error) {
	var counter domain.AppointmentSlotCounter
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&counter.ID,
		&counter.Appointment,
		&counter.Counter,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	counter.CreatedAt = createdAt.Time
	counter.UpdatedAt = updatedAt.Time

	return &counter, nil
}
