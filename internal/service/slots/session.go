package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// ParseSessionSlot разбирает строку "YYYY-MM-DD HH" как локальное время в loc
// Возвращает ошибку для неверного формата и несуществующих дат (2015-13-99, 2015-02-30)
func ParseSessionSlot(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(domain.SessionSlotFormat, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc), nil
}

// FormatSessionSlot обратная операция к ParseSessionSlot
func FormatSessionSlot(appointment time.Time, loc *time.Location) string {
	return appointment.In(loc).Format(domain.SessionSlotFormat)
}

// ParseDayRange разбирает даты YYYY-MM-DD и возвращает окно [полночь from, 23:59:59 to] в loc
func ParseDayRange(from, to string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(domain.DateFormat, from, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := time.ParseInLocation(domain.DateFormat, to, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s is before start %s", to, from)
	}

	return start, time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc), nil
}
