package check_slot

import "context"

type SlotsService interface {
	IsSlotAvailableFromSessionString(ctx context.Context, value string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
