package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	"github.com/m04kA/SMC-LaundryBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-LaundryBooking/pkg/psqlbuilder"
)

var orderColumns = []string{
	"o.id",
	"o.customer_id",
	"o.pick_up_and_delivery_address_id",
	"o.appointment",
	"o.pick_up_time",
	"o.drop_off_time",
	"o.status",
	"o.created_at",
	"o.updated_at",
}

var addressColumns = []string{
	"a.id",
	"a.customer_id",
	"a.address_line_1",
	"a.address_line_2",
	"a.town_or_city",
	"a.postcode",
	"a.created_at",
}

// normalizedPostcode SQL-выражение индекса без пробелов в верхнем регистре
const normalizedPostcode = "UPPER(REPLACE(a.postcode, ' ', ''))"

// Repository репозиторий заказов и их адресов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает заказ по ID (без адреса)
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders o").
		Where(squirrel.Eq{"o.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.Order
	err = executor.QueryRowContext(ctx, query, args...).Scan(orderDest(&order)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return &order, nil
}

// GetLastWithPostcode получает последний созданный заказ клиента, у адреса которого заполнен индекс
func (r *Repository) GetLastWithPostcode(ctx context.Context, customerID int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWithAddress().
		Where(squirrel.Eq{"o.customer_id": customerID}).
		Where("TRIM(a.postcode) <> ''").
		OrderBy("o.created_at DESC", "o.id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLastWithPostcode - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.Order
	var address domain.Address
	err = executor.QueryRowContext(ctx, query, args...).Scan(withAddressDest(&order, &address)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLastWithPostcode - scan order: %v", ErrScanRow, err)
	}

	order.Address = &address
	return &order, nil
}

// GetByCustomerAndPostcodePrefix получает заказы клиента, чей нормализованный индекс адреса
// начинается с prefix. prefix должен быть уже нормализован (верхний регистр, без пробелов).
// Сортировка: сначала новые заказы
func (r *Repository) GetByCustomerAndPostcodePrefix(ctx context.Context, customerID int64, prefix string) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWithAddress().
		Where(squirrel.Eq{"o.customer_id": customerID}).
		Where(squirrel.Like{normalizedPostcode: prefix + "%"}).
		OrderBy("o.created_at DESC", "o.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerAndPostcodePrefix - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerAndPostcodePrefix - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var address domain.Address
		if err := rows.Scan(withAddressDest(&order, &address)...); err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerAndPostcodePrefix - scan row: %v", ErrScanRow, err)
		}
		order.Address = &address
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerAndPostcodePrefix - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// UpdateStatus обновляет статус заказа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func selectWithAddress() squirrel.SelectBuilder {
	columns := make([]string, 0, len(orderColumns)+len(addressColumns))
	columns = append(columns, orderColumns...)
	columns = append(columns, addressColumns...)

	return psqlbuilder.Select(columns...).
		From("orders o").
		Join("addresses a ON a.id = o.pick_up_and_delivery_address_id")
}

func orderDest(o *domain.Order) []interface{} {
	return []interface{}{
		&o.ID,
		&o.CustomerID,
		&o.AddressID,
		&o.Appointment,
		&o.PickUpTime,
		&o.DropOffTime,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}

func withAddressDest(o *domain.Order, a *domain.Address) []interface{} {
	return append(orderDest(o),
		&a.ID,
		&a.CustomerID,
		&a.AddressLine1,
		&a.AddressLine2,
		&a.TownOrCity,
		&a.Postcode,
		&a.CreatedAt,
	)
}
