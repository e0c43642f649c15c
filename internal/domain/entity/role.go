package entity

// Role represents the job an employee performs at a location. Every order is
// staffed with exactly one employee of each role.
type Role string

const (
	// RoleCook prepares the order.
	RoleCook Role = "cook"
	// RoleDispatcher packs and hands the order off for delivery.
	RoleDispatcher Role = "dispatcher"
	// RoleCourier delivers the order.
	RoleCourier Role = "courier"
)

// Roles lists every employee role.
var Roles = []Role{RoleCook, RoleDispatcher, RoleCourier}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCook, RoleDispatcher, RoleCourier:
		return true
	default:
		return false
	}
}
