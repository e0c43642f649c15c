package entity

// Employee is a staff member of one location, identified by national document
// number within that location.
type Employee struct {
	LocationID string  `json:"location_id"`
	DNI        string  `json:"dni"`
	Name       string  `json:"name"`
	Role       Role    `json:"role"`
	Phone      string  `json:"phone"`
	Salary     float64 `json:"salary"`
}

func (e *Employee) EntityKind() Kind     { return KindEmployee }
func (e *Employee) PartitionKey() string { return e.LocationID }
func (e *Employee) SortKey() string      { return e.DNI }
