package order

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

var joinedColumns = []string{
	"id", "customer_id", "pick_up_and_delivery_address_id", "appointment", "pick_up_time",
	"drop_off_time", "status", "created_at", "updated_at",
	"a_id", "a_customer_id", "address_line_1", "address_line_2", "town_or_city", "postcode", "a_created_at",
}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func joinedRow(rows *sqlmock.Rows, orderID, addressID int64, postcode string, created time.Time) *sqlmock.Rows {
	appointment := created.Add(48 * time.Hour)
	return rows.AddRow(
		orderID, 42, addressID, appointment, nil, nil, "confirmed", created, created,
		addressID, 42, "1 Exhibition Road", nil, "London", postcode, created,
	)
}

func TestGetLastWithPostcode(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2015, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM orders o JOIN addresses a ON a.id = o.pick_up_and_delivery_address_id " +
			"WHERE o.customer_id = $1 AND TRIM(a.postcode) <> '' ORDER BY o.created_at DESC, o.id DESC LIMIT 1")).
		WithArgs(int64(42)).
		WillReturnRows(joinedRow(sqlmock.NewRows(joinedColumns), 10, 5, "sw7 3qf", created))

	order, err := repo.GetLastWithPostcode(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, order.Address)
	assert.Equal(t, int64(10), order.ID)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "sw7 3qf", order.Address.Postcode)
	assert.Nil(t, order.Address.AddressLine2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastWithPostcode_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM orders o").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(joinedColumns))

	order, err := repo.GetLastWithPostcode(context.Background(), 42)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetByCustomerAndPostcodePrefix(t *testing.T) {
	repo, mock := newRepo(t)
	newer := time.Date(2015, 3, 10, 12, 0, 0, 0, time.UTC)
	older := time.Date(2015, 2, 10, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(joinedColumns)
	joinedRow(rows, 11, 6, "SW7 2AZ", newer)
	joinedRow(rows, 10, 5, "sw7 3qf", older)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE o.customer_id = $1 AND UPPER(REPLACE(a.postcode, ' ', '')) LIKE $2 ORDER BY o.created_at DESC, o.id DESC")).
		WithArgs(int64(42), "SW7%").
		WillReturnRows(rows)

	orders, err := repo.GetByCustomerAndPostcodePrefix(context.Background(), 42, "SW7")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(6), orders[0].Address.ID)
	assert.Equal(t, int64(5), orders[1].Address.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCustomerAndPostcodePrefix_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM orders o").WillReturnError(errors.New("timeout"))

	_, err := repo.GetByCustomerAndPostcodePrefix(context.Background(), 42, "SW7")
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("confirmed", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 10, domain.OrderStatusConfirmed))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE orders").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 10, domain.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders o WHERE o.id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(joinedColumns[:9]).
			AddRow(10, 42, 5, now, nil, nil, "pending", now, now))

	order, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Nil(t, order.Address)
}
