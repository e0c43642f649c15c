package generate

import "seeder/internal/domain/entity"

// offerGenerator discounts either one product or one combo per offer, never
// both and never neither. Exclusivity is enforced here, at construction time,
// and re-checked by the schema contract.
type offerGenerator struct{}

func (offerGenerator) Kind() entity.Kind { return entity.KindOffer }

func (offerGenerator) DependsOn() []entity.Kind {
	return []entity.Kind{entity.KindLocation, entity.KindProduct}
}

func (offerGenerator) Generate(r *Run) error {
	for range r.Cfg.Counts.Offers {
		loc, err := r.Reg.Sample(entity.KindLocation, r.Rng, nil)
		if err != nil {
			return err
		}

		o := &entity.Offer{
			LocationID:  loc.PartitionKey(),
			OfferID:     r.UUID(),
			Discount:    amountIn(r.Rng, r.Cfg.Ranges.Discount),
			Description: pick(r.Rng, phrases),
		}

		combos := r.Reg.Partition(entity.KindCombo, loc.PartitionKey())
		if len(combos) > 0 && r.Rng.IntN(2) == 0 {
			id := combos[r.Rng.IntN(len(combos))].(*entity.Combo).ComboID
			o.ComboID = &id
		} else {
			product, err := r.Reg.SamplePartition(entity.KindProduct, loc.PartitionKey(), r.Rng, nil)
			if err != nil {
				return err
			}
			name := product.(*entity.Product).Name
			o.ProductName = &name
		}

		if err := r.validateAndRegister(o); err != nil {
			return err
		}
	}

	return nil
}
