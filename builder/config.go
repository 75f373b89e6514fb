// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = PrefixedIDFn("V")   ("V0","V1",...)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(1)
//   • group    = "DEFAULT"
//   • loops    = false               (RandomSparse/Complete skip i == j)

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultIDPrefix    = "V"
	defaultConstWeight = int64(1)
	defaultGroup       = "DEFAULT"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	group    string
	loops    bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     PrefixedIDFn(defaultIDPrefix),
		weightFn: ConstantWeightFn(defaultConstWeight),
		group:    defaultGroup,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.group == "" {
		cfg.group = defaultGroup
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
