package confirm_order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("confirm_order: order not found")

	// ErrAccessDenied возвращается, когда заказ принадлежит другому клиенту
	ErrAccessDenied = errors.New("confirm_order: access denied")

	// ErrInvalidStatus возвращается, когда заказ нельзя подтвердить в текущем статусе
	ErrInvalidStatus = errors.New("confirm_order: order cannot be confirmed in current status")

	// ErrSlotNotAvailable возвращается, когда час записи уже заполнен
	ErrSlotNotAvailable = errors.New("confirm_order: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_order: internal error")
)
