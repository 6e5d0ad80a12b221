// Package builder centralizes common constructor settings — RNG source and
// edge weight distribution — to keep topology builders DRY and consistent,
// mirroring the teacher's builder/config.go. The teacher's third knob,
// IDFn (vertex ID scheme), has no analog here: handlegraph vertices are
// identified by opaque generational handles, not caller-chosen strings, so
// there is nothing for an ID scheme to customize.
package builder

import (
	"math/rand"

	"github.com/google/uuid"
)

// BuilderOption customizes the behavior of a graph constructor. It mutates
// the builderConfig before graph construction begins and never panics.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders. Not
// safe for concurrent mutation; each builder call creates its own via
// newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig returns a builderConfig initialized with defaults (nil
// RNG, DefaultWeightFn), then applies each BuilderOption in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithWeightFn injects a custom WeightFn into the builderConfig. A nil wfn
// is a no-op.
func WithWeightFn(wfn WeightFn) BuilderOption {
	return func(cfg *builderConfig) {
		if wfn != nil {
			cfg.weightFn = wfn
		}
	}
}

// WithRand sets an explicit *rand.Rand source for randomness. A nil rng is
// a no-op and leaves the original RNG untouched.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and assigns
// it as the RNG source. Use this for reproducible randomness.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// newBuildID generates a correlation id for one builder call, adapted from
// the teacher pack's generic_dag.go fallback vertex-id generator — here
// repurposed to tag a construction run rather than a vertex, since handle
// identity already serves that role for vertices.
func newBuildID() string {
	return uuid.New().String()
}
