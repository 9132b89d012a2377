package get_taken_slots

import (
	"context"
	"time"
)

type SlotsService interface {
	Location() *time.Location
	SlotsTaken(ctx context.Context, minDate, maxDate time.Time) (map[string][]int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
