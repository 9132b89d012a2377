package get_taken_slots

// TakenSlotsResponse HTTP response model
type TakenSlotsResponse struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Taken map[string][]int `json:"taken"` // дата YYYY-MM-DD -> полностью занятые часы
}
