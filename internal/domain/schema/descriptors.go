package schema

import "seeder/internal/domain/entity"

func ptr(f float64) *float64 { return &f }

var (
	statuses      = enumStrings(entity.OrderStatuses)
	roles         = enumStrings(entity.Roles)
	categories    = enumStrings(entity.Categories)
	deliverStates = []string{entity.StatusShipping.String(), entity.StatusDelivered.String()}
)

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out
}

// descriptors holds the structural contract of each entity kind.
var descriptors = map[entity.Kind]Descriptor{
	entity.KindUser: {
		Kind: entity.KindUser,
		Fields: []Field{
			{Name: "email", Type: TypeString, Required: true},
			{Name: "name", Type: TypeString, Required: true},
			{Name: "phone", Type: TypeString, Required: true},
			{Name: "created_at", Type: TypeTime, Required: true},
			{Name: "banking", Type: TypeObject, Fields: []Field{
				{Name: "card_number", Type: TypeString, Required: true},
				{Name: "card_holder", Type: TypeString, Required: true},
				{Name: "expiry", Type: TypeString, Required: true},
			}},
		},
	},
	entity.KindLocation: {
		Kind: entity.KindLocation,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "name", Type: TypeString, Required: true},
			{Name: "address", Type: TypeString, Required: true},
			{Name: "district", Type: TypeString, Required: true},
			{Name: "phone", Type: TypeString, Required: true},
		},
	},
	entity.KindProduct: {
		Kind: entity.KindProduct,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "name", Type: TypeString, Required: true},
			{Name: "price", Type: TypeNumber, Required: true, Min: ptr(0), ExclusiveMin: true},
			{Name: "category", Type: TypeString, Required: true, Enum: categories},
			{Name: "description", Type: TypeString},
		},
	},
	entity.KindEmployee: {
		Kind: entity.KindEmployee,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "dni", Type: TypeString, Required: true},
			{Name: "name", Type: TypeString, Required: true},
			{Name: "role", Type: TypeString, Required: true, Enum: roles},
			{Name: "phone", Type: TypeString, Required: true},
			{Name: "salary", Type: TypeNumber, Required: true, Min: ptr(0), ExclusiveMin: true},
		},
	},
	entity.KindCombo: {
		Kind: entity.KindCombo,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "combo_id", Type: TypeString, Required: true},
			{Name: "name", Type: TypeString, Required: true},
			{Name: "products", Type: TypeList, Required: true, MinItems: 2, MaxItems: 4},
			{Name: "price", Type: TypeNumber, Required: true, Min: ptr(0), ExclusiveMin: true},
			{Name: "description", Type: TypeString},
		},
	},
	entity.KindOrder: {
		Kind: entity.KindOrder,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "order_id", Type: TypeString, Required: true},
			{Name: "user_email", Type: TypeString, Required: true},
			{Name: "products", Type: TypeList, Required: true, MinItems: 1, MaxItems: 5},
			{Name: "status", Type: TypeString, Required: true, Enum: statuses},
			{Name: "total", Type: TypeNumber, Required: true, Min: ptr(0), ExclusiveMin: true},
			{Name: "created_at", Type: TypeTime, Required: true},
			{Name: "cook_dni", Type: TypeString, Required: true},
			{Name: "dispatcher_dni", Type: TypeString, Required: true},
			{Name: "courier_dni", Type: TypeString, Required: true},
			{Name: "delivery_address", Type: TypeString, When: &Condition{Field: "status", In: deliverStates}},
			{Name: "delivery_time", Type: TypeTime, When: &Condition{Field: "status", In: deliverStates}},
		},
	},
	entity.KindOffer: {
		Kind: entity.KindOffer,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "offer_id", Type: TypeString, Required: true},
			{Name: "product_name", Type: TypeString},
			{Name: "combo_id", Type: TypeString},
			{Name: "discount", Type: TypeNumber, Required: true, Min: ptr(0), ExclusiveMin: true, Max: ptr(1)},
			{Name: "description", Type: TypeString},
		},
		ExactlyOne: [][]string{{"product_name", "combo_id"}},
	},
	entity.KindReview: {
		Kind: entity.KindReview,
		Fields: []Field{
			{Name: "location_id", Type: TypeString, Required: true},
			{Name: "review_id", Type: TypeString, Required: true},
			{Name: "order_id", Type: TypeString, Required: true},
			{Name: "rating", Type: TypeInteger, Required: true, Min: ptr(0), Max: ptr(5)},
			{Name: "comment", Type: TypeString},
			{Name: "employees", Type: TypeList, MinItems: 0, MaxItems: 3},
		},
	},
	entity.KindToken: {
		Kind: entity.KindToken,
		Fields: []Field{
			{Name: "token", Type: TypeString, Required: true},
			{Name: "user_email", Type: TypeString, Required: true},
			{Name: "issued_at", Type: TypeTime, Required: true},
			{Name: "expires_at", Type: TypeTime, Required: true},
		},
	},
}

// ForKind returns the contract of the given entity kind.
func ForKind(k entity.Kind) (Descriptor, bool) {
	d, ok := descriptors[k]

	return d, ok
}
