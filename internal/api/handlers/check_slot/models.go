package check_slot

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}
