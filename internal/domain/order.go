package domain

import "time"

// OrderStatus represents the status of a laundry order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCollected OrderStatus = "collected"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order заказ на забор и доставку белья
type Order struct {
	ID         int64
	CustomerID int64
	AddressID  int64
	Address    *Address // Адрес забора и доставки (заполняется при JOIN)

	Appointment time.Time
	PickUpTime  *time.Time
	DropOffTime *time.Time
	Status      OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeConfirmed returns true if the order is waiting for confirmation
func (o *Order) CanBeConfirmed() bool {
	return o.Status == OrderStatusPending
}

// BelongsTo returns true if the order was placed by the customer
func (o *Order) BelongsTo(customerID int64) bool {
	return o.CustomerID == customerID
}
