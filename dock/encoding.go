// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"encoding/json"

	"cogentcore.org/dock/base/errors"
	"cogentcore.org/dock/base/iox"
	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the version of the layout file format written by
// [Encode] and [Save]. Files of any 1.x version can be read.
const FormatVersion = "1.0.0"

var formatConstraint = errors.Must1(semver.NewConstraint("^1"))

// record is the encoded form of a [Layout] node, with the node
// kind in Type.
type record struct {
	Version      string    `json:"version,omitempty" toml:"version,omitempty" yaml:"version,omitempty"`
	Type         string    `json:"type" toml:"type" yaml:"type"`
	ID           string    `json:"id" toml:"id" yaml:"id"`
	Size         float64   `json:"size" toml:"size" yaml:"size"`
	Direction    string    `json:"direction,omitempty" toml:"direction,omitempty" yaml:"direction,omitempty"`
	ActivePaneID string    `json:"activePaneId,omitempty" toml:"activePaneId,omitempty" yaml:"activePaneId,omitempty"`
	Panes        []Pane    `json:"panes,omitempty" toml:"panes,omitempty" yaml:"panes,omitempty"`
	Sections     []*record `json:"sections,omitempty" toml:"sections,omitempty" yaml:"sections,omitempty"`
}

func toRecord(l Layout) *record {
	switch n := l.(type) {
	case *Split:
		r := &record{Type: "split", ID: n.ID, Size: n.Size, Direction: n.Direction.String()}
		for _, s := range n.Sections {
			r.Sections = append(r.Sections, toRecord(s))
		}
		return r
	case *Stack:
		return &record{Type: "stack", ID: n.ID, Size: n.Size, ActivePaneID: n.ActivePaneID, Panes: n.Panes}
	}
	return nil
}

func fromRecord(r *record) (Layout, error) {
	if r == nil {
		return nil, errors.New("dock: missing layout node")
	}
	switch r.Type {
	case "split":
		sp := &Split{ID: r.ID, Size: r.Size}
		if r.Direction != "" {
			d, err := ParseDirection(r.Direction)
			if err != nil {
				return nil, err
			}
			sp.Direction = d
		}
		for _, sr := range r.Sections {
			s, err := fromRecord(sr)
			if err != nil {
				return nil, err
			}
			sp.Sections = append(sp.Sections, s)
		}
		return sp, nil
	case "stack":
		return &Stack{ID: r.ID, Size: r.Size, ActivePaneID: r.ActivePaneID, Panes: r.Panes}, nil
	}
	return nil, errors.Errorf("dock: unknown layout type %q of %q", r.Type, r.ID)
}

// root returns the record of the layout with the format version.
func root(l Layout) *record {
	r := toRecord(l)
	r.Version = FormatVersion
	return r
}

// checkVersion checks that a file version, if any, can be read.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Errorf("dock: invalid format version %q: %w", version, err)
	}
	if !formatConstraint.Check(v) {
		return errors.Errorf("dock: unsupported format version %s (want %s)", v, FormatVersion)
	}
	return nil
}

func (s *Split) MarshalJSON() ([]byte, error) {
	return json.Marshal(toRecord(s))
}

func (s *Stack) MarshalJSON() ([]byte, error) {
	return json.Marshal(toRecord(s))
}

// Encode encodes the layout in the given format.
func Encode(l Layout, f iox.Formats) ([]byte, error) {
	if l == nil {
		return nil, errors.New("dock: nil layout")
	}
	return iox.WriteBytes(root(l), f)
}

// Decode decodes and validates a layout in the given format.
func Decode(b []byte, f iox.Formats) (Layout, error) {
	var r record
	if err := iox.ReadBytes(&r, b, f); err != nil {
		return nil, err
	}
	return decoded(&r)
}

func decoded(r *record) (Layout, error) {
	if err := checkVersion(r.Version); err != nil {
		return nil, err
	}
	l, err := fromRecord(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Marshal encodes the layout as JSON.
func Marshal(l Layout) ([]byte, error) {
	return Encode(l, iox.JSON)
}

// Unmarshal decodes and validates a JSON layout.
func Unmarshal(b []byte) (Layout, error) {
	return Decode(b, iox.JSON)
}

// Save saves the layout to the given file, in the format given by
// its extension.
func Save(l Layout, filename string) error {
	if l == nil {
		return errors.New("dock: nil layout")
	}
	return iox.Save(root(l), filename)
}

// Open opens and validates a layout from the given file, in the
// format given by its extension.
func Open(filename string) (Layout, error) {
	var r record
	if err := iox.Open(&r, filename); err != nil {
		return nil, err
	}
	return decoded(&r)
}
