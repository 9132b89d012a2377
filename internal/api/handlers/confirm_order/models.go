package confirm_order

import (
	"time"

	confirmOrder "github.com/m04kA/SMC-LaundryBooking/internal/usecase/confirm_order"
)

// ConfirmOrderResponse HTTP response model
type ConfirmOrderResponse struct {
	OrderID     int64     `json:"orderId"`
	Status      string    `json:"status"`
	Appointment time.Time `json:"appointment"`
	Slot        string    `json:"slot"`
	SlotCounter int       `json:"slotCounter"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmOrder.Response) *ConfirmOrderResponse {
	return &ConfirmOrderResponse{
		OrderID:     resp.OrderID,
		Status:      string(resp.Status),
		Appointment: resp.Appointment,
		Slot:        resp.Slot,
		SlotCounter: resp.SlotCounter,
	}
}
