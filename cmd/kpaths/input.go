package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputYAML = "yaml"

	defaultMaxPaths = 1000
	defaultGroup    = "DEFAULT"

	demoSource = "S"
	demoTarget = "T"
)

var errBadInput = errors.New("invalid input")

// Input holds the resolved command settings.
type Input struct {
	vertices     string
	edges        []edgeSpec
	groupWeights []groupWeight
	source       string
	target       string
	count        int
	maxPaths     int
	demo         bool
	extras       bool
	output       string
	verbose      bool
}

// edgeSpec is one --edge value: positional tail and head lists sharing a
// weight and a group.
type edgeSpec struct {
	tails, heads string
	weight       int64
	group        string
}

type groupWeight struct {
	group  string
	weight int64
}

// newInput resolves the settings from vi; repeatable flags set on the command
// line are read from flags directly.
func newInput(vi *viper.Viper, flags *pflag.FlagSet) (*Input, error) {
	in := &Input{
		vertices: vi.GetString("vertices"),
		source:   vi.GetString("source"),
		target:   vi.GetString("target"),
		count:    vi.GetInt("count"),
		maxPaths: vi.GetInt("max"),
		demo:     vi.GetBool("demo"),
		extras:   vi.GetBool("extras"),
		output:   strings.ToLower(vi.GetString("output")),
		verbose:  vi.GetBool("verbose"),
	}

	for _, raw := range stringList(vi, flags, "edge") {
		e, err := parseEdgeSpec(raw)
		if err != nil {
			return nil, err
		}
		in.edges = append(in.edges, e)
	}
	for _, raw := range stringList(vi, flags, "group-weight") {
		gw, err := parseGroupWeight(raw)
		if err != nil {
			return nil, err
		}
		in.groupWeights = append(in.groupWeights, gw)
	}

	if in.demo {
		if in.source == "" {
			in.source = demoSource
		}
		if in.target == "" {
			in.target = demoTarget
		}
	}

	switch {
	case in.count < 0:
		return nil, fmt.Errorf("%w: --count must be ≥ 0, got %d", errBadInput, in.count)
	case in.maxPaths <= 0:
		return nil, fmt.Errorf("%w: --max must be > 0, got %d", errBadInput, in.maxPaths)
	case in.source == "" || in.target == "":
		return nil, fmt.Errorf("%w: --source and --target are required", errBadInput)
	case in.output != outputText && in.output != outputYAML:
		return nil, fmt.Errorf("%w: unknown output format %q", errBadInput, in.output)
	case !in.demo && in.vertices == "":
		return nil, fmt.Errorf("%w: --vertices is required without --demo", errBadInput)
	}

	return in, nil
}

// stringList returns the values of a repeatable flag. Values given on the
// command line are taken verbatim; otherwise viper supplies them from the
// environment (space separated) or the config file (a list).
func stringList(vi *viper.Viper, flags *pflag.FlagSet, key string) []string {
	if f := flags.Lookup(key); f != nil && f.Changed {
		if vals, err := flags.GetStringArray(key); err == nil {
			return vals
		}
	}

	return vi.GetStringSlice(key)
}

// limit is the number of paths to print.
func (in *Input) limit() int {
	if in.count > 0 {
		return in.count
	}

	return in.maxPaths
}

// parseEdgeSpec reads "TAILS:HEADS:WEIGHT[:GROUP]".
func parseEdgeSpec(raw string) (edgeSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return edgeSpec{}, fmt.Errorf("%w: edge %q, want TAILS:HEADS:WEIGHT[:GROUP]", errBadInput, raw)
	}
	w, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return edgeSpec{}, fmt.Errorf("%w: edge %q weight: %w", errBadInput, raw, err)
	}
	e := edgeSpec{tails: parts[0], heads: parts[1], weight: w, group: defaultGroup}
	if len(parts) == 4 && strings.TrimSpace(parts[3]) != "" {
		e.group = parts[3]
	}

	return e, nil
}

// parseGroupWeight reads "GROUP=WEIGHT".
func parseGroupWeight(raw string) (groupWeight, error) {
	group, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(group) == "" {
		return groupWeight{}, fmt.Errorf("%w: group weight %q, want GROUP=WEIGHT", errBadInput, raw)
	}
	w, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return groupWeight{}, fmt.Errorf("%w: group weight %q: %w", errBadInput, raw, err)
	}

	return groupWeight{group: group, weight: w}, nil
}
