// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// endpoint.go — endpoint normalization and the JSON / YAML forms of Edge.
//
// An endpoint on the wire is either a bare scalar ("A", 3) or an object
// with an "id" field ({"id":"A","label":"start"}). Encoding keeps whichever
// form the endpoint was built with.

package coloring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrBadEndpoint is returned when an endpoint is neither a scalar nor an
// object.
var ErrBadEndpoint = errors.New("coloring: endpoint must be an id or an object with an id")

// resolveEndpoint returns the identifier behind ep. A nil endpoint resolves
// to "" and is treated as malformed by every caller.
func resolveEndpoint(ep Endpoint) string {
	if ep == nil {
		return ""
	}
	if n, ok := ep.(interface{ IsNil() bool }); ok && n.IsNil() {
		return ""
	}
	return ep.EndpointID()
}

// UnmarshalJSON accepts either endpoint form for source and target.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var raw struct {
		Source json.RawMessage `json:"source"`
		Target json.RawMessage `json:"target"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	src, err := decodeEndpointJSON(raw.Source)
	if err != nil {
		return fmt.Errorf("coloring: edge source: %w", err)
	}
	dst, err := decodeEndpointJSON(raw.Target)
	if err != nil {
		return fmt.Errorf("coloring: edge target: %w", err)
	}
	e.Source, e.Target = src, dst

	return nil
}

func decodeEndpointJSON(raw json.RawMessage) (Endpoint, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '{' {
		id, err := scalarIDJSON(raw)
		if err != nil {
			return nil, err
		}
		return ID(id), nil
	}
	var rec struct {
		ID    json.RawMessage `json:"id"`
		Label string          `json:"label"`
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	id, err := scalarIDJSON(bytes.TrimSpace(rec.ID))
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	return Node{ID: id, Label: rec.Label}, nil
}

// scalarIDJSON reads an identifier the same way for bare endpoints and for a
// record's id: strings are unquoted, numbers and booleans keep their literal
// text, null or absent is "".
func scalarIDJSON(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '[', '{':
		return "", ErrBadEndpoint
	default:
		return string(raw), nil
	}
}

// UnmarshalYAML accepts either endpoint form for source and target.
func (e *Edge) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("coloring: edge at line %d: expected mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		ep, err := decodeEndpointYAML(val)
		if err != nil {
			return fmt.Errorf("coloring: edge %s: %w", key.Value, err)
		}
		switch key.Value {
		case "source":
			e.Source = ep
		case "target":
			e.Target = ep
		}
	}

	return nil
}

func decodeEndpointYAML(n *yaml.Node) (Endpoint, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return ID(n.Value), nil
	case yaml.MappingNode:
		var node Node
		if err := n.Decode(&node); err != nil {
			return nil, err
		}
		return node, nil
	case yaml.AliasNode:
		return decodeEndpointYAML(n.Alias)
	default:
		return nil, fmt.Errorf("line %d: %w", n.Line, ErrBadEndpoint)
	}
}
