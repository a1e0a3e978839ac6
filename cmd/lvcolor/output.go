// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvcolor/coloring"
)

func (r *runner) table(header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(r.out)
	t.SetHeader(header)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

func (r *runner) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorTable lists revealed vertices in arrival order with their tokens;
// "-" marks an uncolored vertex.
func (r *runner) colorTable(revealed []string, col coloring.Coloring, plain bool) {
	t := r.table("vertex", "color")
	for _, v := range revealed {
		tok, ok := col[v]
		cell := "-"
		if ok {
			cell = swatch(tok, plain)
		}
		t.Append([]string{v, cell})
	}
	t.Render()
}

// inlineColoring renders "A:tok B:tok ..." for one play step.
func inlineColoring(revealed []string, col coloring.Coloring, plain bool) string {
	parts := make([]string, 0, len(revealed))
	for _, v := range revealed {
		tok, ok := col[v]
		if !ok {
			tok = "-"
		} else if !plain {
			tok = swatch(tok, false)
		}
		parts = append(parts, v+":"+tok)
	}
	return strings.Join(parts, " ")
}
