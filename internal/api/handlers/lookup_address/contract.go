package lookup_address

import (
	"context"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

type AddressService interface {
	OrderAddressLookup(ctx context.Context, customerID int64, fragment string) (*domain.Address, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
