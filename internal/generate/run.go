package generate

import (
	"math/rand/v2"
	"time"

	"seeder/config"
	"seeder/internal/domain/entity"
	"seeder/internal/domain/schema"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Generator produces all entities of one kind. DependsOn declares the parent
// kinds whose pools must be populated before Generate is invoked.
type Generator interface {
	Kind() entity.Kind
	DependsOn() []entity.Kind
	Generate(r *Run) error
}

// Run carries the state threaded through a single generation pass: the
// immutable configuration, the seeded randomness source, the referential
// registry and the timestamp the run started at. Generators receive the Run
// instead of reaching for process-wide state.
type Run struct {
	Cfg *config.Config
	Rng *rand.Rand
	Reg *Registry
	Now time.Time
}

// UUID derives a v4 UUID from the run's randomness source, keeping generated
// identities reproducible under a fixed seed.
func (r *Run) UUID() string {
	return uuid.Must(uuid.NewRandomFromReader(rngReader{r.Rng})).String()
}

// validateAndRegister submits the entity to its schema contract and, on
// success, records it in the registry. A contract violation is returned as an
// InvariantError and aborts the run.
func (r *Run) validateAndRegister(e entity.Entity) error {
	desc, ok := schema.ForKind(e.EntityKind())
	if !ok {
		return errors.Errorf("no schema descriptor for kind %s", e.EntityKind())
	}
	if violations := schema.Validate(desc, e); len(violations) > 0 {
		return &InvariantError{
			Kind:       e.EntityKind(),
			Identity:   entity.Identity(e),
			Violations: violations,
		}
	}

	return r.Reg.Register(e)
}

// pastTime returns a timestamp up to a year before the run started, truncated
// to seconds so serialized datasets round-trip exactly.
func (r *Run) pastTime() time.Time {
	offset := time.Duration(r.Rng.IntN(365*24)) * time.Hour

	return r.Now.Add(-offset).Truncate(time.Second)
}

type rngReader struct {
	rng *rand.Rand
}

func (rr rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.rng.Uint64())
	}

	return len(p), nil
}
