package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dfs"
	"github.com/katalvlaran/kpaths/eppstein"
)

// report is the yaml document written by --output yaml.
type report struct {
	Source    string       `yaml:"source"`
	Target    string       `yaml:"target"`
	Paths     []pathReport `yaml:"paths"`
	Exhausted bool         `yaml:"exhausted"`
}

type pathReport struct {
	Rank     int      `yaml:"rank"`
	Weight   int64    `yaml:"weight"`
	Delta    int64    `yaml:"delta"`
	Vertices []string `yaml:"vertices"`
}

type runner struct {
	input  *Input
	logger *log.Logger
}

func newRunner(input *Input, logger *log.Logger) *runner {
	return &runner{input: input, logger: logger}
}

func (r *runner) run(ctx context.Context, out io.Writer) error {
	g, err := r.buildGraph()
	if err != nil {
		return err
	}
	paths, exhausted, err := r.rank(ctx, g)
	if err != nil {
		return err
	}

	if r.input.output == outputYAML {
		return r.writeYAML(out, paths, exhausted)
	}
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	if exhausted {
		fmt.Fprintln(out, "End.")
	}

	return nil
}

// buildGraph loads the demo fixture or the --vertices/--edge lists, then
// applies the group re-weighting.
func (r *runner) buildGraph() (*core.Graph, error) {
	g := core.NewGraph()
	if r.input.demo {
		if err := builder.Apply(g, nil, builder.Eppstein1997(r.input.extras)); err != nil {
			return nil, err
		}
	} else {
		if err := g.CreateVertices(r.input.vertices); err != nil {
			return nil, fmt.Errorf("vertices: %w", err)
		}
	}
	for _, e := range r.input.edges {
		if err := g.CreateEdges(e.tails, e.heads, e.weight, e.group); err != nil {
			return nil, fmt.Errorf("edge %s:%s: %w", e.tails, e.heads, err)
		}
	}
	for _, gw := range r.input.groupWeights {
		n := g.SetGroupWeight(gw.group, gw.weight)
		r.logger.WithFields(log.Fields{"group": gw.group, "weight": gw.weight, "edges": n}).Info("group re-weighted")
	}
	r.logger.WithFields(log.Fields{"vertices": g.VertexCount(), "edges": g.EdgeCount()}).Debug("graph loaded")

	return g, nil
}

// rank collects up to limit paths. exhausted reports that no further path exists.
func (r *runner) rank(ctx context.Context, g *core.Graph) ([]core.Path, bool, error) {
	ranker := eppstein.New(g, eppstein.WithLogger(r.logger))

	start := time.Now()
	p, err := ranker.FindShortestPath(r.input.source, r.input.target)
	r.logger.WithField("elapsed", time.Since(start)).Info("first path ranked")
	if errors.Is(err, eppstein.ErrUnreachable) {
		r.logger.Warn(err)
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	limit := r.input.limit()
	if r.input.count == 0 {
		if cycle := dfs.FindCycle(g); cycle != nil {
			r.logger.WithFields(log.Fields{"cycle": strings.Join(cycle, ","), "max": limit}).
				Warn("graph has a cycle, the ranking may not run out")
		}
	}
	paths := []core.Path{p}
	for len(paths) < limit {
		if err = ctx.Err(); err != nil {
			return paths, false, err
		}
		p, err = ranker.FindNextShortestPath()
		if errors.Is(err, eppstein.ErrExhausted) {
			return paths, true, nil
		}
		if err != nil {
			return paths, false, err
		}
		paths = append(paths, p)
	}
	// Served paths expand as they are popped, so an empty queue means the
	// last path is already out.
	if ranker.Pending() == 0 {
		return paths, true, nil
	}
	if r.input.count == 0 {
		r.logger.WithField("max", limit).Warn("stopped at --max before the ranking ran out")
	}

	return paths, false, nil
}

func (r *runner) writeYAML(out io.Writer, paths []core.Path, exhausted bool) error {
	doc := report{
		Source:    core.NormalizeLabel(r.input.source),
		Target:    core.NormalizeLabel(r.input.target),
		Paths:     make([]pathReport, 0, len(paths)),
		Exhausted: exhausted,
	}
	for i, p := range paths {
		doc.Paths = append(doc.Paths, pathReport{
			Rank:     i + 1,
			Weight:   p.Weight(),
			Delta:    p.DeltaWeight(),
			Vertices: p.Labels(),
		})
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
