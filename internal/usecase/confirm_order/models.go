package confirm_order

import (
	"time"

	"github.com/m04kA/SMC-LaundryBooking/internal/domain"
)

// Settings параметры вместимости часа записи
type Settings struct {
	Location               *time.Location
	MaxAppointmentsPerHour int
}

// Request модель запроса на подтверждение заказа
type Request struct {
	CustomerID int64 // ID клиента (из X-User-ID)
	OrderID    int64
}

// Response модель ответа с подтвержденным заказом
type Response struct {
	OrderID     int64
	Status      domain.OrderStatus
	Appointment time.Time // Начало часа записи
	Slot        string    // "YYYY-MM-DD HH" в локальном поясе
	SlotCounter int       // Количество подтвержденных заказов в этом часе
}
