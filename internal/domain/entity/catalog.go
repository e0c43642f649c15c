package entity

// Category classifies a product on the menu.
type Category string

const (
	CategoryEntree   Category = "entree"
	CategoryMain     Category = "main"
	CategoryDessert  Category = "dessert"
	CategoryBeverage Category = "beverage"
)

// Categories lists every product category.
var Categories = []Category{CategoryEntree, CategoryMain, CategoryDessert, CategoryBeverage}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// Product is a menu item sold at one location. Its identity is the pair
// (location_id, name); the same dish at another location is a distinct record.
type Product struct {
	LocationID  string   `json:"location_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

func (p *Product) EntityKind() Kind     { return KindProduct }
func (p *Product) PartitionKey() string { return p.LocationID }
func (p *Product) SortKey() string      { return p.Name }

// Combo bundles two or more products of the same location at a single price.
type Combo struct {
	LocationID  string   `json:"location_id"`
	ComboID     string   `json:"combo_id"`
	Name        string   `json:"name"`
	Products    []string `json:"products"` // Product names, all at LocationID.
	Price       float64  `json:"price"`
	Description string   `json:"description"`
}

func (c *Combo) EntityKind() Kind     { return KindCombo }
func (c *Combo) PartitionKey() string { return c.LocationID }
func (c *Combo) SortKey() string      { return c.ComboID }

// Offer discounts exactly one of a product or a combo at a location. The two
// reference fields are mutually exclusive, enforced at generation time and
// again by the schema.
type Offer struct {
	LocationID  string  `json:"location_id"`
	OfferID     string  `json:"offer_id"`
	ProductName *string `json:"product_name,omitempty"`
	ComboID     *string `json:"combo_id,omitempty"`
	Discount    float64 `json:"discount"` // Fraction of the price, in (0, 1].
	Description string  `json:"description"`
}

func (o *Offer) EntityKind() Kind     { return KindOffer }
func (o *Offer) PartitionKey() string { return o.LocationID }
func (o *Offer) SortKey() string      { return o.OfferID }
