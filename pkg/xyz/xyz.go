// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

// Package xyz implements the XYZ geometry format, including multi-frame
// trajectory files as written by the usual MD engines.  Coordinates are in
// Angstrom.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cge-lab/fdeta/pkg/element"
)

type Atom struct {
	Symbol string
	Coord  [3]float64 // Angstrom
}

type Frame struct {
	Comment string
	Atoms   []Atom
}

// ReadTrajectory parses a (possibly multi-frame) XYZ file.  All frames must
// list the same atoms in the same order.
func ReadTrajectory(reader io.Reader) ([]Frame, error) {
	br := bufio.NewReader(reader)
	var frames []Frame
	lineno := 0

	readLine := func() (string, bool, error) {
		line, err := br.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if strings.TrimSpace(line) == "" {
					return "", false, nil
				}
				lineno++
				return strings.TrimRight(line, "\n"), true, nil
			}
			return "", false, err
		}
		lineno++
		return strings.TrimRight(line, "\n"), true, nil
	}

	for {
		line, ok, err := readLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			// tolerate blank lines between frames
			continue
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: atom count: %w", lineno, err)
		}
		if natoms < 1 {
			return nil, fmt.Errorf("line %d: non-positive atom count %d", lineno, natoms)
		}

		comment, ok, err := readLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("line %d: unexpected end of file in frame %d", lineno+1, len(frames)+1)
		}

		frame := Frame{
			Comment: comment,
			Atoms:   make([]Atom, natoms),
		}
		for i := 0; i < natoms; i++ {
			line, ok, err := readLine()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("line %d: unexpected end of file in frame %d", lineno+1, len(frames)+1)
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: expected \"SYMBOL X Y Z\", got %d fields", lineno, len(fields))
			}
			symbol := element.Normalize(fields[0])
			if !element.IsSymbol(symbol) {
				return nil, fmt.Errorf("line %d: unknown element %q", lineno, fields[0])
			}
			frame.Atoms[i].Symbol = symbol
			for c := 0; c < 3; c++ {
				frame.Atoms[i].Coord[c], err = strconv.ParseFloat(fields[1+c], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: coordinate: %w", lineno, err)
				}
			}
		}

		if len(frames) > 0 {
			if len(frame.Atoms) != len(frames[0].Atoms) {
				return nil, fmt.Errorf("frame %d has %d atoms, frame 1 has %d",
					len(frames)+1, len(frame.Atoms), len(frames[0].Atoms))
			}
			// atoms must stay in the same order, or selections resolved on
			// frame 1 would silently pick the wrong atoms later on
			for i, atom := range frame.Atoms {
				if atom.Symbol != frames[0].Atoms[i].Symbol {
					return nil, fmt.Errorf("frame %d atom %d is %s, frame 1 has %s",
						len(frames)+1, i+1, atom.Symbol, frames[0].Atoms[i].Symbol)
				}
			}
		}
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames in trajectory")
	}
	return frames, nil
}

// ReadTrajectoryFile parses the named XYZ file.
func ReadTrajectoryFile(filename string) ([]Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	frames, err := ReadTrajectory(file)
	if err != nil {
		return nil, &fs.PathError{
			Op:   "parse trajectory",
			Path: filename,
			Err:  err,
		}
	}
	return frames, nil
}

// WriteFrame renders a single XYZ frame.
func WriteFrame(writer io.Writer, frame Frame) error {
	w := bufio.NewWriter(writer)
	fmt.Fprintf(w, "%d\n%s\n", len(frame.Atoms), frame.Comment)
	for _, atom := range frame.Atoms {
		fmt.Fprintf(w, "%-3s %15.10f %15.10f %15.10f\n",
			atom.Symbol, atom.Coord[0], atom.Coord[1], atom.Coord[2])
	}
	return w.Flush()
}

// WriteTrajectory renders frames back-to-back.
func WriteTrajectory(writer io.Writer, frames []Frame) error {
	for _, frame := range frames {
		if err := WriteFrame(writer, frame); err != nil {
			return err
		}
	}
	return nil
}
