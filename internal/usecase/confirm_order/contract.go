package confirm_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// CounterRepository интерфейс репозитория счетчиков слотов
type CounterRepository interface {
	GetByAppointment(ctx context.Context, appointment time.Time) (*domain.AppointmentSlotCounter, error)
	Increment(ctx context.Context, appointment time.Time) (*domain.AppointmentSlotCounter, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
