package get_last_postcode

// LastPostcodeResponse HTTP response model
type LastPostcodeResponse struct {
	CustomerID int64  `json:"customerId"`
	Postcode   string `json:"postcode"`
}
