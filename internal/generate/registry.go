package generate

import (
	"math/rand/v2"

	"seeder/internal/domain/entity"

	"github.com/pkg/errors"
)

// Registry is the referential pool: the in-memory store of every entity
// generated so far, indexed for O(1) lookup by identity and grouped by
// partition key. It is the single source of truth generators read parent
// references from. Entities are never mutated after registration, and the
// registry is not safe for concurrent use; generation runs on one goroutine.
type Registry struct {
	pools map[entity.Kind]*pool
}

type pool struct {
	items       []entity.Entity
	byIdentity  map[string]entity.Entity
	byPartition map[string][]entity.Entity
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pools: make(map[entity.Kind]*pool)}
}

func (r *Registry) pool(k entity.Kind) *pool {
	p, ok := r.pools[k]
	if !ok {
		p = &pool{
			byIdentity:  make(map[string]entity.Entity),
			byPartition: make(map[string][]entity.Entity),
		}
		r.pools[k] = p
	}

	return p
}

// Register accepts a validated entity into its kind's pool. It fails with
// ErrDuplicateIdentity when the partition+sort identity already exists.
func (r *Registry) Register(e entity.Entity) error {
	p := r.pool(e.EntityKind())
	id := entity.Identity(e)
	if _, exists := p.byIdentity[id]; exists {
		return errors.Wrapf(ErrDuplicateIdentity, "%s %q", e.EntityKind(), id)
	}

	p.items = append(p.items, e)
	p.byIdentity[id] = e
	p.byPartition[e.PartitionKey()] = append(p.byPartition[e.PartitionKey()], e)

	return nil
}

// Has reports whether an identity is already registered for a kind.
func (r *Registry) Has(k entity.Kind, identity string) bool {
	_, ok := r.pool(k).byIdentity[identity]

	return ok
}

// Get returns the entity registered under the given identity.
func (r *Registry) Get(k entity.Kind, identity string) (entity.Entity, bool) {
	e, ok := r.pool(k).byIdentity[identity]

	return e, ok
}

// All returns every entity of a kind in registration order. The returned
// slice is shared; callers must not modify it.
func (r *Registry) All(k entity.Kind) []entity.Entity {
	return r.pool(k).items
}

// Count returns the number of registered entities of a kind.
func (r *Registry) Count(k entity.Kind) int {
	return len(r.pool(k).items)
}

// Partition returns the entities of a kind sharing a partition key, e.g. all
// products at one location.
func (r *Registry) Partition(k entity.Kind, partitionKey string) []entity.Entity {
	return r.pool(k).byPartition[partitionKey]
}

// Sample returns a uniformly selected entity of a kind matching the optional
// filter, or ErrEmptyPool when no candidate exists.
func (r *Registry) Sample(k entity.Kind, rng *rand.Rand, filter func(entity.Entity) bool) (entity.Entity, error) {
	return sample(k, r.pool(k).items, rng, filter)
}

// SamplePartition is Sample scoped to one partition, e.g. "an employee at
// this location with role cook".
func (r *Registry) SamplePartition(k entity.Kind, partitionKey string, rng *rand.Rand, filter func(entity.Entity) bool) (entity.Entity, error) {
	return sample(k, r.pool(k).byPartition[partitionKey], rng, filter)
}

func sample(k entity.Kind, candidates []entity.Entity, rng *rand.Rand, filter func(entity.Entity) bool) (entity.Entity, error) {
	if filter != nil {
		matched := make([]entity.Entity, 0, len(candidates))
		for _, e := range candidates {
			if filter(e) {
				matched = append(matched, e)
			}
		}
		candidates = matched
	}
	if len(candidates) == 0 {
		return nil, errors.Wrapf(ErrEmptyPool, "no %s candidates", k)
	}

	return candidates[rng.IntN(len(candidates))], nil
}

// Export returns the per-kind pools in registration order. The registry is
// discarded after the run; the exported map is the hand-off to serialization.
func (r *Registry) Export() map[entity.Kind][]entity.Entity {
	out := make(map[entity.Kind][]entity.Entity, len(r.pools))
	for k, p := range r.pools {
		out[k] = p.items
	}

	return out
}
