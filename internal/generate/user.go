package generate

import (
	"fmt"
	"strings"

	"seeder/internal/domain/entity"
)

// userGenerator produces customer accounts. Emails embed a sequence number so
// identities are unique regardless of how name samples collide.
type userGenerator struct{}

func (userGenerator) Kind() entity.Kind        { return entity.KindUser }
func (userGenerator) DependsOn() []entity.Kind { return nil }

func (userGenerator) Generate(r *Run) error {
	for i := range r.Cfg.Counts.Users {
		first := pick(r.Rng, firstNames)
		last := pick(r.Rng, lastNames)
		u := &entity.User{
			Email: fmt.Sprintf("%s.%s%d@%s",
				strings.ToLower(first), strings.ToLower(last), i+1, pick(r.Rng, emailDomains)),
			Name:      first + " " + last,
			Phone:     phone(r.Rng),
			CreatedAt: r.pastTime(),
		}
		if r.Rng.Float64() < r.Cfg.Users.BankingProbability {
			u.Banking = &entity.Banking{
				CardNumber: digits(r.Rng, 16),
				CardHolder: strings.ToUpper(u.Name),
				Expiry:     fmt.Sprintf("%02d/%02d", 1+r.Rng.IntN(12), 27+r.Rng.IntN(4)),
			}
		}
		if err := r.validateAndRegister(u); err != nil {
			return err
		}
	}

	return nil
}
