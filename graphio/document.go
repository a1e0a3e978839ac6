// SPDX-License-Identifier: MIT
// Package: lvcolor/graphio
//
// document.go — the on-disk / on-wire graph document and its codecs.

package graphio

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/palette"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates an unknown format name or file extension.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrEmptyDocument indicates a document without vertices.
	ErrEmptyDocument = errors.New("graphio: document has no vertices")
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is a graph as exchanged with files, the HTTP API and the CLI.
// Vertices are in arrival order; edge endpoints keep the form (bare id or
// {id} record) they were written in.
type Document struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Vertices []string        `json:"vertices" yaml:"vertices"`
	Edges    []coloring.Edge `json:"edges" yaml:"edges"`
	Palette  []string        `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// FromLists wraps vertex and edge lists in a Document.
func FromLists(name string, vertices []string, edges []coloring.Edge) *Document {
	return &Document{Name: name, Vertices: vertices, Edges: edges}
}

// Lists returns the vertex and edge lists for the coloring algorithms.
func (d *Document) Lists() ([]string, []coloring.Edge) {
	return d.Vertices, d.Edges
}

// Options returns the coloring options the document carries: its palette,
// when set.
func (d *Document) Options() ([]coloring.Option, error) {
	if len(d.Palette) == 0 {
		return nil, nil
	}
	p, err := palette.New(d.Palette...)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: document %q palette", d.Name)
	}
	return []coloring.Option{coloring.WithPalette(p)}, nil
}

// ParseFormat maps a name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", name)
	}
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads one document in format f.
//
// Errors:
//   - ErrUnsupportedFormat, ErrEmptyDocument, or the decoder's error.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "graphio: decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "graphio: decode yaml")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", string(f))
	}
	if len(doc.Vertices) == 0 {
		return nil, errors.Wrapf(ErrEmptyDocument, "graphio: document %q", doc.Name)
	}
	return &doc, nil
}

// Encode writes doc in format f. JSON output is indented.
func Encode(w io.Writer, f Format, doc *Document) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "graphio: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "graphio: encode yaml")
		}
		return errors.Wrap(enc.Close(), "graphio: encode yaml")
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", string(f))
	}
}

// LoadFile reads a document, choosing the format from the extension.
func LoadFile(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: open")
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: load %s", path)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// SaveFile writes doc, choosing the format from the extension.
func SaveFile(path string, doc *Document) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "graphio: create")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = errors.Wrap(cerr, "graphio: close")
		}
	}()
	return Encode(file, f, doc)
}
