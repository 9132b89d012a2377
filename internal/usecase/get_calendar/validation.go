package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// resolveDays возвращает количество дней с учетом значения по умолчанию
func resolveDays(days int, settings Settings) (int, error) {
	if days == 0 {
		return settings.DefaultDays, nil
	}
	if days < 0 || days > settings.MaxDays {
		return 0, fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, settings.MaxDays)
	}
	return days, nil
}

// resolveStart разбирает дату начала в локальном поясе и проверяет, что она не в прошлом
func resolveStart(from string, now time.Time, loc *time.Location) (time.Time, error) {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	if from == "" {
		return today, nil
	}

	start, err := time.ParseInLocation(domain.DateFormat, from, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD: %v", ErrInvalidDate, err)
	}

	if start.Before(today) {
		return time.Time{}, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, from)
	}

	return start, nil
}
