package generate

import "seeder/internal/domain/entity"

// employeeGenerator first staffs every location with one employee per role,
// then spreads the remaining count at random. Order generation samples staff
// by (location, role), so the baseline guarantees those pools are never empty.
type employeeGenerator struct{}

func (employeeGenerator) Kind() entity.Kind        { return entity.KindEmployee }
func (employeeGenerator) DependsOn() []entity.Kind { return []entity.Kind{entity.KindLocation} }

func (employeeGenerator) Generate(r *Run) error {
	locations := r.Reg.All(entity.KindLocation)

	count := r.Cfg.Counts.Employees
	baseline := 3 * len(locations)
	if count >= baseline {
		for _, loc := range locations {
			for _, role := range entity.Roles {
				if err := registerEmployee(r, loc.PartitionKey(), role); err != nil {
					return err
				}
			}
		}
		count -= baseline
	}

	for range count {
		loc := pick(r.Rng, locations)
		if err := registerEmployee(r, loc.PartitionKey(), pick(r.Rng, entity.Roles)); err != nil {
			return err
		}
	}

	return nil
}

func registerEmployee(r *Run, locationID string, role entity.Role) error {
	dni := digits(r.Rng, 8)
	for r.Reg.Has(entity.KindEmployee, locationID+"#"+dni) {
		dni = digits(r.Rng, 8)
	}

	e := &entity.Employee{
		LocationID: locationID,
		DNI:        dni,
		Name:       pick(r.Rng, firstNames) + " " + pick(r.Rng, lastNames),
		Role:       role,
		Phone:      phone(r.Rng),
		Salary:     amountIn(r.Rng, r.Cfg.Ranges.Salary),
	}

	return r.validateAndRegister(e)
}
