package entity

// Review rates a completed order. It may call out up to three employees, all
// of whom must belong to the reviewed order's assigned staff.
type Review struct {
	LocationID string   `json:"location_id"`
	ReviewID   string   `json:"review_id"`
	OrderID    string   `json:"order_id"` // Must reference a delivered order at LocationID.
	Rating     int      `json:"rating"`   // Inclusive range [0, 5].
	Comment    *string  `json:"comment,omitempty"`
	Employees  []string `json:"employees"` // 0 to 3 dni values, subset of the order's staff.
}

func (r *Review) EntityKind() Kind     { return KindReview }
func (r *Review) PartitionKey() string { return r.LocationID }
func (r *Review) SortKey() string      { return r.ReviewID }
