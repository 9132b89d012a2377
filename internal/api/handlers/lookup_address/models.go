package lookup_address

import "github.com/m04kA/SMC-LaundryBooking/internal/domain"

// AddressResponse HTTP response model
type AddressResponse struct {
	ID           int64   `json:"id"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	TownOrCity   string  `json:"townOrCity"`
	Postcode     string  `json:"postcode"`
}

// FromDomain конвертирует адрес в HTTP response
func FromDomain(address *domain.Address) *AddressResponse {
	return &AddressResponse{
		ID:           address.ID,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		TownOrCity:   address.TownOrCity,
		Postcode:     address.Postcode,
	}
}
