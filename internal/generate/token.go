package generate

import (
	"time"

	"seeder/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// tokenGenerator issues signed session tokens for sampled users. The token
// value is an HS256 JWT; its jti claim is a generated UUID, so two tokens for
// the same user never collide.
type tokenGenerator struct{}

func (tokenGenerator) Kind() entity.Kind        { return entity.KindToken }
func (tokenGenerator) DependsOn() []entity.Kind { return []entity.Kind{entity.KindUser} }

func (tokenGenerator) Generate(r *Run) error {
	secret := []byte(r.Cfg.Token.Secret)
	issued := r.Now.Truncate(time.Second)
	expires := issued.Add(r.Cfg.Token.TTL)

	for range r.Cfg.Counts.Tokens {
		user, err := r.Reg.Sample(entity.KindUser, r.Rng, nil)
		if err != nil {
			return err
		}

		claims := jwt.RegisteredClaims{
			ID:        r.UUID(),
			Subject:   user.PartitionKey(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			return errors.Wrap(err, "sign auth token")
		}

		t := &entity.AuthToken{
			Token:     signed,
			UserEmail: user.PartitionKey(),
			IssuedAt:  issued,
			ExpiresAt: expires,
		}
		if err := r.validateAndRegister(t); err != nil {
			return err
		}
	}

	return nil
}
