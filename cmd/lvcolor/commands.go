// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graphio"
	"github.com/katalvlaran/lvcolor/palette"
	"github.com/katalvlaran/lvcolor/server"
	"github.com/katalvlaran/lvcolor/stepper"
)

func (r *runner) samples(cCtx *cli.Context) error {
	format := cCtx.String(FormatFlag)
	if err := checkFormat(format); err != nil {
		return err
	}
	infos := builder.Samples()
	if format == formatJSON {
		return r.writeJSON(infos)
	}

	t := r.table("size", "name", "edges", "description")
	for _, s := range infos {
		t.Append([]string{strconv.Itoa(s.Size), s.Name, strconv.Itoa(s.EdgeCount), s.Description})
	}
	t.Render()
	return nil
}

func (r *runner) color(cCtx *cli.Context) error {
	format := cCtx.String(FormatFlag)
	if err := checkFormat(format); err != nil {
		return err
	}
	algo, err := coloring.Lookup(cCtx.String(AlgorithmFlag))
	if err != nil {
		return err
	}
	doc, opts, err := r.setup(cCtx)
	if err != nil {
		return err
	}

	k := revealCount(cCtx, len(doc.Vertices))
	res, st := coloring.Run(algo.Fn, doc.Vertices, doc.Edges, k, opts...)
	r.log.Info("colored",
		zap.String("algorithm", algo.Name),
		zap.Int("k", k),
		zap.Int("colors", res.TotalColors),
		zap.Int("conflicts", st.Conflicts),
	)

	if format == formatJSON {
		return r.writeJSON(server.ColorResponse{
			Algorithm:   algo.Name,
			RevealCount: k,
			Current:     currentVertex(doc.Vertices, k),
			Coloring:    res.Coloring,
			TotalColors: res.TotalColors,
			Conflicts:   st.Conflicts,
			Uncolored:   res.Uncolored,
			Order:       res.Order,
		})
	}

	fmt.Fprintf(r.out, "%s: %s, k=%d/%d\n", graphName(doc), algo.Title, k, len(doc.Vertices))
	r.colorTable(doc.Vertices[:k], res.Coloring, cCtx.Bool(PlainFlag))
	fmt.Fprintf(r.out, "colors=%d conflicts=%d uncolored=%d\n", res.TotalColors, st.Conflicts, len(res.Uncolored))
	return nil
}

func (r *runner) compare(cCtx *cli.Context) error {
	format := cCtx.String(FormatFlag)
	if err := checkFormat(format); err != nil {
		return err
	}
	doc, opts, err := r.setup(cCtx)
	if err != nil {
		return err
	}

	k := revealCount(cCtx, len(doc.Vertices))
	cmp := coloring.Compare(doc.Vertices, doc.Edges, k, opts...)
	best := make(map[string]bool)
	names := make([]string, 0, len(cmp.Entries))
	for _, e := range cmp.Best() {
		best[e.Algorithm] = true
		names = append(names, e.Algorithm)
	}

	if format == formatJSON {
		return r.writeJSON(server.CompareResponse{RevealCount: k, Entries: cmp.Entries, Best: names})
	}

	fmt.Fprintf(r.out, "%s: k=%d/%d\n", graphName(doc), k, len(doc.Vertices))
	t := r.table("algorithm", "colors", "conflicts", "best")
	for _, e := range cmp.Entries {
		mark := ""
		if best[e.Algorithm] {
			mark = "*"
		}
		t.Append([]string{e.Title, strconv.Itoa(e.TotalColors), strconv.Itoa(e.Conflicts), mark})
	}
	t.Render()
	return nil
}

func (r *runner) trace(cCtx *cli.Context) error {
	format := cCtx.String(FormatFlag)
	if err := checkFormat(format); err != nil {
		return err
	}
	algo, err := coloring.Lookup(cCtx.String(AlgorithmFlag))
	if err != nil {
		return err
	}
	doc, opts, err := r.setup(cCtx)
	if err != nil {
		return err
	}

	steps := stepper.Trace(algo.Fn, doc.Vertices, doc.Edges, opts...)
	if format == formatJSON {
		return r.writeJSON(server.TraceResponse{
			Algorithm:    algo.Name,
			Steps:        steps,
			RecolorCount: stepper.RecolorCount(steps),
		})
	}

	fmt.Fprintf(r.out, "%s: %s\n", graphName(doc), algo.Title)
	t := r.table("k", "current", "colors", "conflicts", "recolored")
	for _, s := range steps {
		t.Append([]string{
			strconv.Itoa(s.K),
			s.Current,
			strconv.Itoa(s.Stats.TotalColors),
			strconv.Itoa(s.Stats.Conflicts),
			strings.Join(s.Recolored, " "),
		})
	}
	t.Render()
	fmt.Fprintf(r.out, "recolored=%d\n", stepper.RecolorCount(steps))
	return nil
}

func (r *runner) play(cCtx *cli.Context) error {
	algo, err := coloring.Lookup(cCtx.String(AlgorithmFlag))
	if err != nil {
		return err
	}
	doc, opts, err := r.setup(cCtx)
	if err != nil {
		return err
	}
	plain := cCtx.Bool(PlainFlag)
	n := len(doc.Vertices)

	onStep := func(k int) {
		res, st := coloring.Run(algo.Fn, doc.Vertices, doc.Edges, k, opts...)
		fmt.Fprintf(r.out, "k=%d/%d %-6s colors=%d conflicts=%d  %s\n",
			k, n, currentVertex(doc.Vertices, k), res.TotalColors, st.Conflicts,
			inlineColoring(doc.Vertices[:k], res.Coloring, plain))
	}
	p, err := stepper.NewPlayer(n, playerOptions(cCtx, r.log, onStep)...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(r.out, "%s: %s, %d vertices, one every %s\n", graphName(doc), algo.Title, n, p.Interval())
	if err := p.Play(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if !p.Done() {
		fmt.Fprintf(r.out, "stopped at k=%d\n", p.Current())
	}
	return nil
}

func (r *runner) serve(cCtx *cli.Context) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	srv := server.New(server.WithLogger(r.log), server.WithRegistry(reg))

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := cCtx.String(AddrFlag)
	fmt.Fprintf(r.out, "serving on %s\n", addr)
	return srv.ListenAndServe(ctx, addr)
}

func (r *runner) palette(cCtx *cli.Context) error {
	format := cCtx.String(FormatFlag)
	if err := checkFormat(format); err != nil {
		return err
	}
	pal, err := resolvePalette(cCtx, nil)
	if err != nil {
		return err
	}
	if cCtx.Bool(CheckFlag) {
		if err := pal.ValidateHex(); err != nil {
			return err
		}
	}

	if format == formatJSON {
		return r.writeJSON(pal.Tokens())
	}
	t := r.table("index", "token")
	for i, tok := range pal.Tokens() {
		t.Append([]string{strconv.Itoa(i), swatch(tok, cCtx.Bool(PlainFlag))})
	}
	t.Render()
	return nil
}

func (r *runner) export(cCtx *cli.Context) error {
	doc, err := r.loadGraph(cCtx)
	if err != nil {
		return err
	}
	if cCtx.IsSet(PaletteFlag) || cCtx.IsSet(PaletteSizeFlag) {
		pal, err := resolvePalette(cCtx, doc)
		if err != nil {
			return err
		}
		doc.Palette = pal.Tokens()
	}

	out := cCtx.Path(OutFlag)
	if err := graphio.SaveFile(out, doc); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "wrote %s (%d vertices, %d edges)\n", out, len(doc.Vertices), len(doc.Edges))
	return nil
}

func currentVertex(vertices []string, k int) string {
	if k <= 0 || k > len(vertices) {
		return ""
	}
	return vertices[k-1]
}

func graphName(doc *graphio.Document) string {
	if doc.Name == "" {
		return "graph"
	}
	return doc.Name
}

func swatch(tok string, plain bool) string {
	if plain {
		return tok
	}
	return palette.Swatch(tok)
}
