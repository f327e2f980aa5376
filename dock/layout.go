// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dock provides a persistent tree of split and tab stack
// containers for dockable panes, and a [Controller] that applies
// resize, activate, insert, remove, and move operations to it.
//
// Layout trees are never mutated once published: every operation
// copies the nodes on the path it changes and shares all others,
// so any previously returned root stays valid and can be reinstated,
// which is how undo works.
package dock

import (
	"strings"

	"cogentcore.org/dock/base/errors"
)

// Directions are the layout directions of a [Split].
type Directions int32 //enums:enum

const (
	// Horizontal lays out sections left to right.
	Horizontal Directions = iota

	// Vertical lays out sections top to bottom.
	Vertical
)

func (d Directions) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Other returns the perpendicular direction.
func (d Directions) Other() Directions {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Directions, error) {
	switch strings.ToLower(s) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, errors.Errorf("dock: unknown direction %q", s)
}

func (d Directions) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Directions) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Locations are where a pane is placed relative to an anchor pane.
type Locations int32 //enums:enum

const (
	// None is no location, such as a drop outside of any area.
	None Locations = iota

	// Insert places the pane in the anchor's stack, at the
	// anchor's index.
	Insert

	// Center appends the pane to the anchor's stack.
	Center

	// Left, Right, Top, and Bottom place the pane in a new stack
	// on that edge of the anchor's stack.
	Left
	Right
	Top
	Bottom
)

var locationsNames = [...]string{"none", "insert", "center", "left", "right", "top", "bottom"}

func (l Locations) String() string {
	if l < 0 || int(l) >= len(locationsNames) {
		return "none"
	}
	return locationsNames[l]
}

// ParseLocation parses a location name.
func ParseLocation(s string) (Locations, error) {
	s = strings.ToLower(s)
	for i, n := range locationsNames {
		if n == s {
			return Locations(i), nil
		}
	}
	return None, errors.Errorf("dock: unknown location %q", s)
}

// IsEdge returns whether the location creates a new stack.
func (l Locations) IsEdge() bool {
	return l >= Left && l <= Bottom
}

// Direction returns the split direction of an edge location.
func (l Locations) Direction() Directions {
	if l == Top || l == Bottom {
		return Vertical
	}
	return Horizontal
}

// IsBefore returns whether an edge location is before its anchor.
func (l Locations) IsBefore() bool {
	return l == Left || l == Top
}

// Layout is a node of the layout tree: a [*Split] or a [*Stack].
// Nodes reachable from a published root must not be modified.
type Layout interface {

	// LayoutID returns the unique id of the node.
	LayoutID() string

	// LayoutSize returns the size of the node relative to
	// its siblings.
	LayoutSize() float64

	// clone returns a shallow copy of the node that can be
	// modified without affecting the original.
	clone() Layout

	setSize(size float64)
}

// Split lays out two or more sections side by side.
type Split struct {
	ID        string
	Direction Directions
	Size      float64
	Sections  []Layout
}

func (s *Split) LayoutID() string     { return s.ID }
func (s *Split) LayoutSize() float64  { return s.Size }
func (s *Split) setSize(size float64) { s.Size = size }

func (s *Split) clone() Layout {
	c := *s
	c.Sections = append([]Layout(nil), s.Sections...)
	return &c
}

// Stack is a group of panes of which exactly one,
// the active pane, is visible.
type Stack struct {
	ID           string
	Size         float64
	ActivePaneID string
	Panes        []Pane
}

func (s *Stack) LayoutID() string     { return s.ID }
func (s *Stack) LayoutSize() float64  { return s.Size }
func (s *Stack) setSize(size float64) { s.Size = size }

func (s *Stack) clone() Layout {
	c := *s
	c.Panes = append([]Pane(nil), s.Panes...)
	return &c
}

// ActivePane returns the active pane, or nil if there is none.
func (s *Stack) ActivePane() *Pane {
	for i := range s.Panes {
		if s.Panes[i].ID == s.ActivePaneID {
			return &s.Panes[i]
		}
	}
	return nil
}

// Pane is one dockable pane. ComponentID is an opaque key that
// a [Factory] resolves to the content of the pane.
type Pane struct {
	ID          string `json:"id" toml:"id" yaml:"id"`
	Title       string `json:"title" toml:"title" yaml:"title"`
	Closable    bool   `json:"closable,omitempty" toml:"closable,omitempty" yaml:"closable,omitempty"`
	Movable     bool   `json:"movable,omitempty" toml:"movable,omitempty" yaml:"movable,omitempty"`
	ComponentID string `json:"componentId" toml:"componentId" yaml:"componentId"`
}

// Walk calls fun for every node of the tree in depth-first order,
// with the depth of the node. If fun returns false the children of
// the node are skipped.
func Walk(l Layout, fun func(l Layout, depth int) bool) {
	walk(l, 0, fun)
}

func walk(l Layout, depth int, fun func(l Layout, depth int) bool) {
	if l == nil || !fun(l, depth) {
		return
	}
	if sp, ok := l.(*Split); ok {
		for _, s := range sp.Sections {
			walk(s, depth+1, fun)
		}
	}
}

// Find returns the node with the given id, or nil.
func Find(l Layout, id string) Layout {
	var found Layout
	Walk(l, func(n Layout, depth int) bool {
		if found != nil {
			return false
		}
		if n.LayoutID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindSplit returns the split with the given id, or nil.
func FindSplit(l Layout, id string) *Split {
	sp, _ := Find(l, id).(*Split)
	return sp
}

// FindPane returns the pane with the given id and its stack,
// or nil.
func FindPane(l Layout, id string) (*Pane, *Stack) {
	p := PanePath(l, id)
	if p == nil {
		return nil, nil
	}
	st := p[0].Node.(*Stack)
	return &st.Panes[p[0].Index], st
}

// Panes returns all panes of the tree in depth-first order.
func Panes(l Layout) []Pane {
	var ps []Pane
	Walk(l, func(n Layout, depth int) bool {
		if st, ok := n.(*Stack); ok {
			ps = append(ps, st.Panes...)
		}
		return true
	})
	return ps
}
