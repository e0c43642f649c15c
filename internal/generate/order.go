package generate

import (
	"time"

	"seeder/internal/domain/entity"
)

// orderGenerator produces purchases. Staff sampling is scoped by the order's
// location and the role each field expects; the delivery fields are filled
// only when the drawn status requires them. This is a field-presence policy,
// not a state machine: transitions are not modeled over time.
type orderGenerator struct{}

func (orderGenerator) Kind() entity.Kind { return entity.KindOrder }

func (orderGenerator) DependsOn() []entity.Kind {
	return []entity.Kind{entity.KindLocation, entity.KindUser, entity.KindProduct, entity.KindEmployee}
}

func (orderGenerator) Generate(r *Run) error {
	for range r.Cfg.Counts.Orders {
		loc, err := r.Reg.Sample(entity.KindLocation, r.Rng, nil)
		if err != nil {
			return err
		}
		user, err := r.Reg.Sample(entity.KindUser, r.Rng, nil)
		if err != nil {
			return err
		}
		names, total := sampleProducts(r, loc.PartitionKey(), 1, 5)

		staff := make(map[entity.Role]string, len(entity.Roles))
		for _, role := range entity.Roles {
			emp, err := r.Reg.SamplePartition(entity.KindEmployee, loc.PartitionKey(), r.Rng, func(e entity.Entity) bool {
				return e.(*entity.Employee).Role == role
			})
			if err != nil {
				return err
			}
			staff[role] = emp.(*entity.Employee).DNI
		}

		o := &entity.Order{
			LocationID:    loc.PartitionKey(),
			OrderID:       r.UUID(),
			UserEmail:     user.PartitionKey(),
			Products:      names,
			Status:        pick(r.Rng, entity.OrderStatuses),
			Total:         total,
			CreatedAt:     r.pastTime(),
			CookDNI:       staff[entity.RoleCook],
			DispatcherDNI: staff[entity.RoleDispatcher],
			CourierDNI:    staff[entity.RoleCourier],
		}
		if o.Status.RequiresDelivery() {
			addr := streetAddress(r.Rng) + ", " + pick(r.Rng, districts)
			at := o.CreatedAt.Add(time.Duration(20+r.Rng.IntN(70)) * time.Minute)
			o.DeliveryAddress = &addr
			o.DeliveryTime = &at
		}
		if err := r.validateAndRegister(o); err != nil {
			return err
		}
	}

	return nil
}
