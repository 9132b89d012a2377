package slots

import "errors"

var (
	// ErrInvalidSettings возвращается при некорректных настройках сервиса
	ErrInvalidSettings = errors.New("slots: invalid settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
