package generate

import (
	"fmt"
	"strings"

	"seeder/internal/domain/entity"
	"seeder/internal/domain/schema"

	"github.com/pkg/errors"
)

// ErrEmptyPool is returned when sampling finds no candidate entity. It always
// signals a configuration or ordering defect upstream, never a transient
// condition.
var ErrEmptyPool = errors.New("empty pool")

// ErrDuplicateIdentity is returned when a registered entity collides with an
// existing identity within its kind.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// InvariantError reports that a generator produced an entity violating its
// structural contract. It is fatal for the run: the defect is in generation
// logic, not in the environment.
type InvariantError struct {
	Kind       entity.Kind
	Identity   string
	Violations []schema.Violation
}

func (e *InvariantError) Error() string {
	rules := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		rules[i] = v.String()
	}

	return fmt.Sprintf("%s %q violates schema: %s", e.Kind, e.Identity, strings.Join(rules, "; "))
}
