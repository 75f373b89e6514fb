// Package builder contains unit tests for the configuration primitives
// (builderConfig, BuilderOption, ID and weight functions).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, "V7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultConstWeight, cfg.weight())
	assert.Equal(t, defaultGroup, cfg.group)
	assert.False(t, cfg.loops)
}

func TestBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithIDScheme(PrefixedIDFn("N")),
		WithIDScheme(ExcelColumnIDFn),
		WithWeightFn(ConstantWeightFn(3)),
		WithGroup("a"),
		WithGroup(""),
		WithSeed(1),
		WithLoops(),
	)
	assert.Equal(t, "AB", cfg.idFn(27))
	assert.Equal(t, int64(3), cfg.weight())
	assert.Equal(t, defaultGroup, cfg.group, "empty group falls back to the default")
	assert.NotNil(t, cfg.rng)
	assert.True(t, cfg.loops)
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
	assert.Panics(t, func() { PrefixedIDFn("") })
	assert.Panics(t, func() { PrefixedIDFn("1x") })
	assert.Panics(t, func() { ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { UniformWeightFn(5, 4) })
}

func TestExcelColumnIDFn(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, ExcelColumnIDFn(idx), "idx=%d", idx)
	}
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()

	fn := UniformWeightFn(2, 5)
	assert.Equal(t, int64(2), fn(nil), "no rng yields min")

	rng := rand.New(rand.NewSource(7))
	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, int64(2))
		require.LessOrEqual(t, w, int64(5))
		seen[w] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, int64(9), UniformWeightFn(9, 9)(rng))
}
