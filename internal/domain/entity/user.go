package entity

import "time"

// User is a registered customer account, identified globally by email.
type User struct {
	Email     string    `json:"email"`             // Global unique identifier and partition key.
	Name      string    `json:"name"`              // The customer's display name.
	Phone     string    `json:"phone"`             // Contact phone number.
	CreatedAt time.Time `json:"created_at"`        // Timestamp of account creation.
	Banking   *Banking  `json:"banking,omitempty"` // Present only for users with stored payment details.
}

// Banking holds a user's stored card details. The block is attached with a
// configured probability; absent means the user pays on delivery.
type Banking struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	Expiry     string `json:"expiry"` // MM/YY
}

func (u *User) EntityKind() Kind     { return KindUser }
func (u *User) PartitionKey() string { return u.Email }
func (u *User) SortKey() string      { return "" }
