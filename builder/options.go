// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/kpaths/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// IDFn maps a vertex index to its label. It must be pure and must produce
// labels that satisfy the core grammar.
type IDFn func(idx int) string

// WeightFn draws an edge weight. rng may be nil when no seed was configured.
type WeightFn func(rng *rand.Rand) int64

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithGroup tags every generated edge with group (empty means the default).
func WithGroup(group string) BuilderOption {
	return func(c *builderConfig) {
		c.group = group
	}
}

// WithLoops lets Complete and RandomSparse emit self-loops.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}

// PrefixedIDFn returns an IDFn producing prefix+index ("V0", "V1", ...).
// Panics if prefix does not start with a letter.
func PrefixedIDFn(prefix string) IDFn {
	if !core.ValidLabel(core.NormalizeLabel(prefix)) {
		panic(fmt.Sprintf("builder: PrefixedIDFn(%q): not a valid label prefix", prefix))
	}
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ConstantWeightFn always yields w.
func ConstantWeightFn(w int64) WeightFn {
	return func(*rand.Rand) int64 { return w }
}

// UniformWeightFn samples uniformly in [min, max]. Without an RNG it yields
// min. Panics if min > max.
func UniformWeightFn(min, max int64) WeightFn {
	if min > max {
		panic(fmt.Sprintf("builder: UniformWeightFn(min=%d > max=%d)", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || min == max {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
