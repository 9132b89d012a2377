package confirm_order

import (
	"context"

	confirmOrder "github.com/m04kA/SMC-LaundryBooking/internal/usecase/confirm_order"
)

type ConfirmOrderUseCase interface {
	Execute(ctx context.Context, req *confirmOrder.Request) (*confirmOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
