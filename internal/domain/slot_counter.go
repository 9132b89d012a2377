package domain

import "time"

// AppointmentSlotCounter количество подтвержденных заказов на конкретный час
// Для каждого часа существует не более одной записи (UNIQUE appointment).
// Отсутствие записи означает, что в этот час заказов нет.
type AppointmentSlotCounter struct {
	ID          int64
	Appointment time.Time // Начало часа, с часовым поясом
	Counter     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFull returns true if the hour has reached the ceiling
func (c *AppointmentSlotCounter) IsFull(maxAppointmentsPerHour int) bool {
	return c.Counter >= maxAppointmentsPerHour
}

// TruncateToHour обрезает время до начала часа в указанном часовом поясе
// time.Truncate работает от нулевого времени в UTC и ломается на поясах со сдвигом не кратным часу
func TruncateToHour(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)
}
