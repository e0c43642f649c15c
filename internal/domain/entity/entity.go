// Package entity contains the core business objects of the generated dataset,
// one per DynamoDB table, each identified by a partition key and, for the
// location-scoped kinds, a sort key within that partition.
package entity

// Kind names one of the nine entity types.
type Kind string

const (
	KindUser     Kind = "user"
	KindLocation Kind = "location"
	KindProduct  Kind = "product"
	KindEmployee Kind = "employee"
	KindCombo    Kind = "combo"
	KindOrder    Kind = "order"
	KindOffer    Kind = "offer"
	KindReview   Kind = "review"
	KindToken    Kind = "token"
)

// Kinds lists every entity kind in generation dependency order: parents
// always precede the kinds that reference them.
var Kinds = []Kind{
	KindLocation,
	KindUser,
	KindProduct,
	KindEmployee,
	KindCombo,
	KindOrder,
	KindOffer,
	KindReview,
	KindToken,
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindUser, KindLocation, KindProduct, KindEmployee, KindCombo,
		KindOrder, KindOffer, KindReview, KindToken:
		return true
	default:
		return false
	}
}

// Entity is implemented by every generated record. PartitionKey is the
// record's partition identity; SortKey is empty for the single-key kinds
// (User, Location, AuthToken). For location-scoped kinds the partition key is
// the owning location id, which is also the grouping key the registry indexes
// by.
type Entity interface {
	EntityKind() Kind
	PartitionKey() string
	SortKey() string
}

// Identity composes the partition and sort keys into the unique identity of
// an entity within its kind.
func Identity(e Entity) string {
	if sk := e.SortKey(); sk != "" {
		return e.PartitionKey() + "#" + sk
	}

	return e.PartitionKey()
}
