package entity

// OrderStatus represents a stage in the fixed order progression.
type OrderStatus string

const (
	StatusSelecting OrderStatus = "selecting"
	StatusCooking   OrderStatus = "cooking"
	StatusPacking   OrderStatus = "packing"
	StatusShipping  OrderStatus = "shipping"
	StatusDelivered OrderStatus = "delivered"
)

// OrderStatuses lists the allowed statuses in progression order.
var OrderStatuses = []OrderStatus{
	StatusSelecting,
	StatusCooking,
	StatusPacking,
	StatusShipping,
	StatusDelivered,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is an allowed value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusSelecting, StatusCooking, StatusPacking, StatusShipping, StatusDelivered:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status represents a completed order,
// eligible to be reviewed.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered
}

// RequiresDelivery reports whether an order in this status must carry the
// delivery address and delivery time fields.
func (s OrderStatus) RequiresDelivery() bool {
	return s == StatusShipping || s == StatusDelivered
}
