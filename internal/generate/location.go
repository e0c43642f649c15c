package generate

import "seeder/internal/domain/entity"

// locationGenerator produces the root entities every scoped kind hangs off.
type locationGenerator struct{}

func (locationGenerator) Kind() entity.Kind        { return entity.KindLocation }
func (locationGenerator) DependsOn() []entity.Kind { return nil }

func (locationGenerator) Generate(r *Run) error {
	for range r.Cfg.Counts.Locations {
		district := pick(r.Rng, districts)
		loc := &entity.Location{
			LocationID: r.UUID(),
			Name:       "Wok " + district,
			Address:    streetAddress(r.Rng),
			District:   district,
			Phone:      phone(r.Rng),
		}
		if err := r.validateAndRegister(loc); err != nil {
			return err
		}
	}

	return nil
}
