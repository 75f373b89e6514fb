package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kpaths/core"
)

func TestValidLabel(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"S", true},
		{"A1", true},
		{"NODE42X", true},
		{"ÄB", true},
		{"", false},
		{"1A", false},
		{"A-B", false},
		{"A B", false},
		{"_A", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, core.ValidLabel(c.in), "label %q", c.in)
	}
}

func TestParseLabels(t *testing.T) {
	got, err := core.ParseLabels(" s ,a,,B,b,")
	assert.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B"}, got)

	_, err = core.ParseLabels("A,B$")
	assert.True(t, errors.Is(err, core.ErrMalformedLabel))

	got, err = core.ParseLabels("")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "ABC", core.NormalizeLabel("  aBc "))
}
