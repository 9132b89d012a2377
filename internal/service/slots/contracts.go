package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// CounterRepository интерфейс репозитория счетчиков по часам
type CounterRepository interface {
	GetByAppointment(ctx context.Context, appointment time.Time) (*domain.AppointmentSlotCounter, error)
	GetFullInRange(ctx context.Context, from, to time.Time, maxAppointmentsPerHour int) ([]*domain.AppointmentSlotCounter, error)
}

// MetricsRecorder учет результатов проверок доступности
type MetricsRecorder interface {
	ObserveSlotCheck(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
