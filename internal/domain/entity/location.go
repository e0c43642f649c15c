package entity

// Location is a physical store. Every location-scoped entity carries its
// location_id as partition key.
type Location struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Phone      string `json:"phone"`
}

func (l *Location) EntityKind() Kind     { return KindLocation }
func (l *Location) PartitionKey() string { return l.LocationID }
func (l *Location) SortKey() string      { return "" }
