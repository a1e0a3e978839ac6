// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graphio"
	"github.com/katalvlaran/lvcolor/palette"
	"github.com/katalvlaran/lvcolor/stepper"
)

const defaultInterval = stepper.DefaultInterval

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func graphFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.PathFlag{
			Name:    GraphFlag,
			Aliases: []string{"g"},
			Usage:   "graph document (.json, .yaml, .yml)",
			EnvVars: []string{"LVCOLOR_GRAPH"},
		},
		&cli.IntFlag{
			Name:    SampleFlag,
			Aliases: []string{"s"},
			Usage:   fmt.Sprintf("reference sample size %v, used without --graph", builder.SampleSizes()),
			Value:   builder.DefaultSampleSize,
			EnvVars: []string{"LVCOLOR_SAMPLE"},
		},
		&cli.IntFlag{
			Name:  RandomFlag,
			Usage: "random connected graph with N vertices instead of a sample",
		},
		&cli.StringFlag{
			Name:    TopologyFlag,
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("classic topology instead of a sample, one of %v", builder.Topologies()),
			EnvVars: []string{"LVCOLOR_TOPOLOGY"},
		},
		&cli.Int64Flag{
			Name:    SeedFlag,
			Usage:   "seed for --random and the random topologies",
			Value:   1,
			EnvVars: []string{"LVCOLOR_SEED"},
		},
	}, paletteFlags()...)
}

func paletteFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    PaletteFlag,
			Usage:   "comma-separated palette tokens",
			EnvVars: []string{"LVCOLOR_PALETTE"},
		},
		&cli.IntFlag{
			Name:    PaletteSizeFlag,
			Usage:   "generated palette of N colors",
			EnvVars: []string{"LVCOLOR_PALETTE_SIZE"},
		},
	}
}

func algorithmFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    AlgorithmFlag,
		Aliases: []string{"a"},
		Usage:   fmt.Sprintf("one of %v", coloring.Names()),
		Value:   coloring.NameFirstFit,
		EnvVars: []string{"LVCOLOR_ALGORITHM"},
	}
}

func revealFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  RevealFlag,
		Usage: "reveal count (default: every vertex)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    FormatFlag,
		Aliases: []string{"f"},
		Usage:   "output format: table or json",
		Value:   formatTable,
		EnvVars: []string{"LVCOLOR_FORMAT"},
	}
}

func plainFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    PlainFlag,
		Usage:   "no ANSI color swatches",
		EnvVars: []string{"LVCOLOR_PLAIN", "NO_COLOR"},
	}
}

func newLogger(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", LogLevelFlag, err)
	}
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}

// loadGraph resolves --graph, --topology, --random or --sample, in that
// order.
func (r *runner) loadGraph(cCtx *cli.Context) (*graphio.Document, error) {
	switch {
	case cCtx.IsSet(GraphFlag):
		return graphio.LoadFile(cCtx.Path(GraphFlag))
	case cCtx.IsSet(TopologyFlag):
		spec := cCtx.String(TopologyFlag)
		cons, err := builder.ParseTopology(spec)
		if err != nil {
			return nil, err
		}
		vs, es, err := builder.BuildLists([]builder.BuilderOption{builder.WithSeed(cCtx.Int64(SeedFlag))}, cons)
		if err != nil {
			return nil, err
		}
		return graphio.FromLists(spec, vs, es), nil
	case cCtx.IsSet(RandomFlag):
		n := cCtx.Int(RandomFlag)
		vs, es, err := builder.BuildLists(
			[]builder.BuilderOption{builder.WithSeed(cCtx.Int64(SeedFlag))},
			builder.RandomForward(n),
		)
		if err != nil {
			return nil, err
		}
		return graphio.FromLists(fmt.Sprintf("random-%d", n), vs, es), nil
	default:
		return graphio.FromSample(cCtx.Int(SampleFlag))
	}
}

// resolvePalette picks --palette, then --palette-size, then the document's
// palette, then the default.
func resolvePalette(cCtx *cli.Context, doc *graphio.Document) (palette.Palette, error) {
	switch {
	case cCtx.String(PaletteFlag) != "":
		return palette.Parse(cCtx.String(PaletteFlag))
	case cCtx.IsSet(PaletteSizeFlag):
		return palette.Generate(cCtx.Int(PaletteSizeFlag))
	case doc != nil && len(doc.Palette) > 0:
		return palette.New(doc.Palette...)
	default:
		return palette.Default(), nil
	}
}

// setup loads the graph and its coloring options.
func (r *runner) setup(cCtx *cli.Context) (*graphio.Document, []coloring.Option, error) {
	doc, err := r.loadGraph(cCtx)
	if err != nil {
		return nil, nil, err
	}
	pal, err := resolvePalette(cCtx, doc)
	if err != nil {
		return nil, nil, err
	}
	r.log.Debug("graph loaded",
		zap.String("name", doc.Name),
		zap.Int("vertices", len(doc.Vertices)),
		zap.Int("edges", len(doc.Edges)),
		zap.Int("palette", pal.Len()),
	)
	return doc, []coloring.Option{coloring.WithPalette(pal)}, nil
}

// revealCount returns --k clamped to [0, n], or n when unset.
func revealCount(cCtx *cli.Context, n int) int {
	if !cCtx.IsSet(RevealFlag) {
		return n
	}
	return min(max(cCtx.Int(RevealFlag), 0), n)
}

func checkFormat(f string) error {
	if f != formatTable && f != formatJSON {
		return fmt.Errorf("--%s %q: want %s or %s", FormatFlag, f, formatTable, formatJSON)
	}
	return nil
}

func playerOptions(cCtx *cli.Context, log *zap.Logger, onStep func(int)) []stepper.Option {
	return []stepper.Option{
		stepper.WithInterval(cCtx.Duration(IntervalFlag)),
		stepper.WithSpeed(cCtx.Float64(SpeedFlag)),
		stepper.WithLogger(log),
		stepper.WithOnStep(onStep),
	}
}
