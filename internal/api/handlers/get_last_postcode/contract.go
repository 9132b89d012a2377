package get_last_postcode

import "context"

type AddressService interface {
	PostcodeFromLastOrder(ctx context.Context, customerID int64) (*string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
