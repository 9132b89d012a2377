package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// Settings параметры сетки календаря
type Settings struct {
	Location    *time.Location
	FirstHour   int // Первый час записи (включительно)
	LastHour    int // Последний час записи (включительно)
	DefaultDays int
	MaxDays     int
}

// Request модель запроса календаря
type Request struct {
	From string // YYYY-MM-DD, пусто - сегодня
	Days int    // 0 - значение по умолчанию
}

// Response сетка календаря с отмеченными занятыми часами
type Response struct {
	From time.Time
	Days []domain.CalendarDay
}
