// SPDX-License-Identifier: MIT
// Package: lvcolor/graphio
//
// sample.go — reference graphs as documents.

package graphio

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvcolor/builder"
)

// FromSample returns the reference graph with size vertices as a Document
// named after the sample.
//
// Errors:
//   - builder.ErrUnknownSample for a size without a reference graph.
func FromSample(size int) (*Document, error) {
	cons, err := builder.SampleStrict(size)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: sample")
	}
	vs, es, err := builder.BuildLists(nil, cons)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: sample %d", size)
	}
	name := ""
	for _, info := range builder.Samples() {
		if info.Size == size {
			name = info.Name
		}
	}
	return FromLists(name, vs, es), nil
}
