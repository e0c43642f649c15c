// Package generate is the referential generation engine: it produces the nine
// entity kinds in dependency order, guarantees every cross-entity reference
// points to an already-materialized parent, and validates every entity against
// its schema contract before acceptance.
package generate

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"seeder/config"
	"seeder/internal/domain/entity"

	"github.com/pkg/errors"
)

// Orchestrator sequences the generators along the dependency graph and feeds
// each one the shared registry. Generation is single-goroutine and fully
// deterministic for a fixed seed and configuration.
type Orchestrator struct {
	cfg        *config.Config
	logger     *slog.Logger
	generators []Generator
	now        func() time.Time
}

// NewOrchestrator wires the generators in topological order: Location before
// the scoped kinds, User independently, Order after its parents, Review after
// Order.
func NewOrchestrator(cfg *config.Config, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		logger: logger,
		generators: []Generator{
			locationGenerator{},
			userGenerator{},
			productGenerator{},
			employeeGenerator{},
			comboGenerator{},
			orderGenerator{},
			offerGenerator{},
			reviewGenerator{},
			tokenGenerator{},
		},
		now: time.Now,
	}
}

// CheckGraph verifies, before any generation begins, that no generator with a
// positive count declares a parent kind whose configured count is zero. An
// unsatisfiable dependency is a configuration error, never a runtime retry
// condition.
func (o *Orchestrator) CheckGraph() error {
	for _, g := range o.generators {
		if o.cfg.Counts.Of(g.Kind().String()) == 0 {
			continue
		}
		for _, dep := range g.DependsOn() {
			if o.cfg.Counts.Of(dep.String()) == 0 {
				return errors.Wrapf(config.ErrConfiguration,
					"generator %s depends on %s, whose count is zero", g.Kind(), dep)
			}
		}
	}

	return nil
}

// Generate runs the full pass and returns the per-kind pools in registration
// order. Any error is fatal for the run: generation defects are bugs, not
// transient conditions, and are never retried.
func (o *Orchestrator) Generate() (map[entity.Kind][]entity.Entity, error) {
	if err := o.CheckGraph(); err != nil {
		return nil, err
	}

	run := &Run{
		Cfg: o.cfg,
		Rng: rand.New(rand.NewPCG(o.cfg.Seed, o.cfg.Seed)),
		Reg: NewRegistry(),
		Now: o.now().UTC().Truncate(time.Second),
	}

	for _, g := range o.generators {
		if o.cfg.Counts.Of(g.Kind().String()) == 0 {
			continue
		}
		if err := g.Generate(run); err != nil {
			return nil, errors.Wrapf(err, "generate %s", g.Kind())
		}
		o.logger.Info("pool generated",
			slog.String("kind", g.Kind().String()),
			slog.Int("count", run.Reg.Count(g.Kind())))
	}

	return run.Reg.Export(), nil
}
