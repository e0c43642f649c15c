package generate

import (
	"fmt"

	"seeder/internal/domain/entity"
)

// productGenerator assigns products to locations round-robin, so every
// location ends up with a proportional share of the menu and the downstream
// generators (combo, order, offer) always find products in scope.
type productGenerator struct{}

func (productGenerator) Kind() entity.Kind        { return entity.KindProduct }
func (productGenerator) DependsOn() []entity.Kind { return []entity.Kind{entity.KindLocation} }

func (productGenerator) Generate(r *Run) error {
	locations := r.Reg.All(entity.KindLocation)
	for i := range r.Cfg.Counts.Products {
		loc := locations[i%len(locations)]
		p := &entity.Product{
			LocationID:  loc.PartitionKey(),
			Name:        productName(r, loc.PartitionKey(), i),
			Price:       amountIn(r.Rng, r.Cfg.Ranges.Price),
			Category:    pick(r.Rng, entity.Categories),
			Description: pick(r.Rng, phrases),
		}
		if err := r.validateAndRegister(p); err != nil {
			return err
		}
	}

	return nil
}

// productName draws a dish name unique within the location, extending the
// base pool with style suffixes and, as a last resort, a sequence number.
func productName(r *Run, locationID string, seq int) string {
	name := pick(r.Rng, dishes)
	if !r.Reg.Has(entity.KindProduct, locationID+"#"+name) {
		return name
	}
	styled := name + " " + pick(r.Rng, dishStyles)
	if !r.Reg.Has(entity.KindProduct, locationID+"#"+styled) {
		return styled
	}

	return fmt.Sprintf("%s %d", name, seq+1)
}
