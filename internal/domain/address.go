package domain

import (
	"strings"
	"time"
)

// Address адрес клиента. Postcode хранится как ввел пользователь,
// регистр и пробелы не нормализованы
type Address struct {
	ID           int64
	CustomerID   int64
	AddressLine1 string
	AddressLine2 *string
	TownOrCity   string
	Postcode     string
	CreatedAt    time.Time
}

// HasPostcode returns true if the postcode is populated
func (a *Address) HasPostcode() bool {
	return strings.TrimSpace(a.Postcode) != ""
}
