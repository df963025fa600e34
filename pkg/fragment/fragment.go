// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package fragment selects the subsystem of interest (the "active" fragment)
// out of a geometry, leaving the rest as environment.
package fragment

import (
	"fmt"
	"os"
	"sort"

	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"

	"github.com/cge-lab/fdeta/pkg/element"
	"github.com/cge-lab/fdeta/pkg/xyz"
)

// Selection describes a fragment.  An Atoms entry is either a 1-based atom
// index or an element symbol (which selects every atom of that element).
type Selection struct {
	Name  string
	Atoms []intstr.IntOrString
}

// Load reads a YAML selection from a file.
func Load(filename string) (*Selection, error) {
	yamlBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var sel Selection
	if err := yaml.Unmarshal(yamlBytes, &sel, yaml.DisallowUnknownFields); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if len(sel.Atoms) == 0 {
		return nil, fmt.Errorf("%s: selection %q selects no atoms", filename, sel.Name)
	}
	return &sel, nil
}

// Indices resolves the selection against a frame, returning sorted, unique,
// 0-based atom indices.
func (sel *Selection) Indices(frame xyz.Frame) ([]int, error) {
	picked := make(map[int]struct{})
	for _, entry := range sel.Atoms {
		switch entry.Type {
		case intstr.Int:
			idx := entry.IntValue()
			if idx < 1 || idx > len(frame.Atoms) {
				return nil, fmt.Errorf("selection %q: atom index %d out of range 1..%d",
					sel.Name, idx, len(frame.Atoms))
			}
			picked[idx-1] = struct{}{}
		case intstr.String:
			symbol := element.Normalize(entry.StrVal)
			if !element.IsSymbol(symbol) {
				return nil, fmt.Errorf("selection %q: unknown element %q", sel.Name, entry.StrVal)
			}
			found := false
			for i, atom := range frame.Atoms {
				if atom.Symbol == symbol {
					picked[i] = struct{}{}
					found = true
				}
			}
			if !found {
				return nil, fmt.Errorf("selection %q: no %s atoms in frame", sel.Name, symbol)
			}
		default:
			return nil, fmt.Errorf("selection %q: invalid entry type %d", sel.Name, entry.Type)
		}
	}
	indices := make([]int, 0, len(picked))
	for idx := range picked {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices, nil
}

// Split partitions a frame in to the selected fragment and the remaining
// environment.
func (sel *Selection) Split(frame xyz.Frame) (inside, outside []xyz.Atom, err error) {
	indices, err := sel.Indices(frame)
	if err != nil {
		return nil, nil, err
	}
	member := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		member[idx] = struct{}{}
	}
	for i, atom := range frame.Atoms {
		if _, ok := member[i]; ok {
			inside = append(inside, atom)
		} else {
			outside = append(outside, atom)
		}
	}
	return inside, outside, nil
}
