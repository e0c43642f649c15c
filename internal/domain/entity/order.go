package entity

import "time"

// Order is a purchase placed by a user at one location. It references its
// products and assigned staff by name/dni within the same location, and the
// ordering user by email. The delivery fields are present iff the status is
// shipping or delivered.
type Order struct {
	LocationID string      `json:"location_id"`
	OrderID    string      `json:"order_id"`
	UserEmail  string      `json:"user_email"`
	Products   []string    `json:"products"` // Product names, all at LocationID.
	Status     OrderStatus `json:"status"`
	Total      float64     `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`

	// Assigned staff, one per role, all employed at LocationID.
	CookDNI       string `json:"cook_dni"`
	DispatcherDNI string `json:"dispatcher_dni"`
	CourierDNI    string `json:"courier_dni"`

	DeliveryAddress *string    `json:"delivery_address,omitempty"`
	DeliveryTime    *time.Time `json:"delivery_time,omitempty"`
}

func (o *Order) EntityKind() Kind     { return KindOrder }
func (o *Order) PartitionKey() string { return o.LocationID }
func (o *Order) SortKey() string      { return o.OrderID }

// Staff returns the dni values of the order's assigned employees.
func (o *Order) Staff() []string {
	return []string{o.CookDNI, o.DispatcherDNI, o.CourierDNI}
}
