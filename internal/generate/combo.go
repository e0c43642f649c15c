package generate

import "seeder/internal/domain/entity"

// comboDiscount prices a combo below the sum of its parts.
const comboDiscount = 0.85

// comboGenerator bundles products of a single location.
type comboGenerator struct{}

func (comboGenerator) Kind() entity.Kind { return entity.KindCombo }

func (comboGenerator) DependsOn() []entity.Kind {
	return []entity.Kind{entity.KindLocation, entity.KindProduct}
}

func (comboGenerator) Generate(r *Run) error {
	for range r.Cfg.Counts.Combos {
		loc, err := r.Reg.Sample(entity.KindLocation, r.Rng, nil)
		if err != nil {
			return err
		}
		names, total := sampleProducts(r, loc.PartitionKey(), 2, 4)

		c := &entity.Combo{
			LocationID:  loc.PartitionKey(),
			ComboID:     r.UUID(),
			Name:        pick(r.Rng, comboNames),
			Products:    names,
			Price:       round2(total * comboDiscount),
			Description: pick(r.Rng, phrases),
		}
		if err := r.validateAndRegister(c); err != nil {
			return err
		}
	}

	return nil
}

// sampleProducts picks between minN and maxN distinct products at a location
// and returns their names with the summed price. The selection is capped by
// how many products the location actually has; config validation guarantees
// the floor.
func sampleProducts(r *Run, locationID string, minN, maxN int) ([]string, float64) {
	products := r.Reg.Partition(entity.KindProduct, locationID)
	n := minN + r.Rng.IntN(maxN-minN+1)
	if n > len(products) {
		n = len(products)
	}

	names := make([]string, 0, n)
	var total float64
	for _, idx := range r.Rng.Perm(len(products))[:n] {
		p := products[idx].(*entity.Product)
		names = append(names, p.Name)
		total += p.Price
	}

	return names, round2(total)
}
