package addresses

import (
	"context"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
	"github.com/m04kA/SMC-LaundryBooking/pkg/postcode"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetLastWithPostcode(ctx context.Context, customerID int64) (*domain.Order, error)
	GetByCustomerAndPostcodePrefix(ctx context.Context, customerID int64, prefix string) ([]*domain.Order, error)
}

// PostcodeParser разбирает строку в индекс (outcode + необязательный incode)
type PostcodeParser interface {
	Parse(raw string) (postcode.Postcode, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
