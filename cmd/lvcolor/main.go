// SPDX-License-Identifier: MIT

// Command lvcolor runs the online graph coloring engine from the terminal:
// color a graph with one algorithm, compare all of them, trace or play the
// reveal sequence step by step, or serve the HTTP API.
//
//	lvcolor samples
//	lvcolor color   --sample 8 --algorithm greedy --k 5
//	lvcolor compare --graph g.yaml --format json
//	lvcolor compare --topology wheel:7
//	lvcolor play    --sample 12 --algorithm cbip --speed 2
//	lvcolor serve   --addr :8080
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Flag names.
const (
	GraphFlag       = "graph"
	SampleFlag      = "sample"
	RandomFlag      = "random"
	TopologyFlag    = "topology"
	SeedFlag        = "seed"
	AlgorithmFlag   = "algorithm"
	RevealFlag      = "k"
	PaletteFlag     = "palette"
	PaletteSizeFlag = "palette-size"
	FormatFlag      = "format"
	PlainFlag       = "plain"
	LogLevelFlag    = "log-level"
	LogDevFlag      = "log-dev"
	SpeedFlag       = "speed"
	IntervalFlag    = "interval"
	AddrFlag        = "addr"
	OutFlag         = "out"
	CheckFlag       = "check"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "lvcolor:", err)
		os.Exit(1)
	}
}

// runner carries what every command shares.
type runner struct {
	out io.Writer
	log *zap.Logger
}

func newApp(out, errOut io.Writer) *cli.App {
	r := &runner{out: out, log: zap.NewNop()}

	return &cli.App{
		Name:      "lvcolor",
		Usage:     "online graph coloring: FirstFit, CBIP, Greedy and Welsh-Powell",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    LogLevelFlag,
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LVCOLOR_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    LogDevFlag,
				Usage:   "human-readable development logs",
				EnvVars: []string{"LVCOLOR_LOG_DEV"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			l, err := newLogger(cCtx.String(LogLevelFlag), cCtx.Bool(LogDevFlag))
			if err != nil {
				return err
			}
			r.log = l
			return nil
		},
		After: func(*cli.Context) error {
			_ = r.log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "samples",
				Usage:  "list the reference sample graphs",
				Flags:  []cli.Flag{formatFlag()},
				Action: r.samples,
			},
			{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "color the first k vertices with one algorithm",
				Flags:   append(graphFlags(), algorithmFlag(), revealFlag(), formatFlag(), plainFlag()),
				Action:  r.color,
			},
			{
				Name:   "compare",
				Usage:  "run every algorithm on the first k vertices",
				Flags:  append(graphFlags(), revealFlag(), formatFlag()),
				Action: r.compare,
			},
			{
				Name:   "trace",
				Usage:  "run one algorithm at every reveal count",
				Flags:  append(graphFlags(), algorithmFlag(), formatFlag()),
				Action: r.trace,
			},
			{
				Name:  "play",
				Usage: "reveal vertices one by one on a timer (Ctrl-C stops)",
				Flags: append(graphFlags(), algorithmFlag(), plainFlag(),
					&cli.Float64Flag{
						Name:    SpeedFlag,
						Usage:   "speed multiplier in [0.5, 3]",
						Value:   1,
						EnvVars: []string{"LVCOLOR_SPEED"},
					},
					&cli.DurationFlag{
						Name:    IntervalFlag,
						Usage:   "delay between steps at speed 1",
						Value:   defaultInterval,
						EnvVars: []string{"LVCOLOR_INTERVAL"},
					},
				),
				Action: r.play,
			},
			{
				Name:  "serve",
				Usage: "serve the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    AddrFlag,
						Usage:   "listen address",
						Value:   ":8080",
						EnvVars: []string{"LVCOLOR_ADDR"},
					},
				},
				Action: r.serve,
			},
			{
				Name:  "palette",
				Usage: "show the active palette",
				Flags: append(paletteFlags(), formatFlag(), plainFlag(),
					&cli.BoolFlag{
						Name:  CheckFlag,
						Usage: "fail unless every token is a hex color",
					},
				),
				Action: r.palette,
			},
			{
				Name:  "export",
				Usage: "write the selected graph to a .json, .yaml or .yml file",
				Flags: append(graphFlags(),
					&cli.PathFlag{
						Name:     OutFlag,
						Aliases:  []string{"o"},
						Usage:    "output file",
						Required: true,
					},
				),
				Action: r.export,
			},
		},
	}
}
