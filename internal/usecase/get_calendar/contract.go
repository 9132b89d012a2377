package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// SlotsService интерфейс сервиса вместимости слотов
type SlotsService interface {
	MarkUnavailableSlots(ctx context.Context, grid []domain.CalendarDay) ([]domain.CalendarDay, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
