package generate

import (
	"seeder/internal/domain/entity"

	"github.com/pkg/errors"
)

// reviewGenerator rates completed orders. It samples only orders in a
// terminal status and picks the called-out employees from that order's
// assigned staff, so both referential rules hold by construction.
type reviewGenerator struct{}

func (reviewGenerator) Kind() entity.Kind        { return entity.KindReview }
func (reviewGenerator) DependsOn() []entity.Kind { return []entity.Kind{entity.KindOrder} }

func (reviewGenerator) Generate(r *Run) error {
	ratings := r.Cfg.Ranges.Rating

	for range r.Cfg.Counts.Reviews {
		sampled, err := r.Reg.Sample(entity.KindOrder, r.Rng, func(e entity.Entity) bool {
			return e.(*entity.Order).Status.IsTerminal()
		})
		if err != nil {
			return errors.Wrap(err, "no delivered orders to review")
		}
		order := sampled.(*entity.Order)

		staff := order.Staff()
		called := make([]string, 0, 3)
		for _, idx := range r.Rng.Perm(len(staff))[:r.Rng.IntN(len(staff)+1)] {
			called = append(called, staff[idx])
		}

		rev := &entity.Review{
			LocationID: order.LocationID,
			ReviewID:   r.UUID(),
			OrderID:    order.OrderID,
			Rating:     int(ratings.Min) + r.Rng.IntN(int(ratings.Max)-int(ratings.Min)+1),
			Employees:  called,
		}
		if r.Rng.Float64() < r.Cfg.Reviews.CommentProbability {
			comment := pick(r.Rng, comments)
			rev.Comment = &comment
		}
		if err := r.validateAndRegister(rev); err != nil {
			return err
		}
	}

	return nil
}
