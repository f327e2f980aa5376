// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"log/slog"
	"slices"
)

// Step is one step of a [Path]: a node and the index of the
// child within it. For a [*Stack] the index is a pane index,
// for a [*Split] it is a section index.
type Step struct {
	Node  Layout
	Index int
}

// Path is the path to a pane, ordered from the pane's stack
// (element 0) up to the root (last element).
type Path []Step

// Stack returns the stack holding the pane.
func (p Path) Stack() *Stack {
	return p[0].Node.(*Stack)
}

// Split returns the split holding the pane's stack, or nil
// if the stack is the root.
func (p Path) Split() *Split {
	if len(p) < 2 {
		return nil
	}
	return p[1].Node.(*Split)
}

// PanePath returns the path to the pane with the given id,
// or nil if it is not in the tree.
func PanePath(l Layout, paneID string) Path {
	switch n := l.(type) {
	case *Split:
		for i, s := range n.Sections {
			if p := PanePath(s, paneID); p != nil {
				return append(p, Step{Node: n, Index: i})
			}
		}
	case *Stack:
		for i := range n.Panes {
			if n.Panes[i].ID == paneID {
				return Path{{Node: n, Index: i}}
			}
		}
	}
	return nil
}

// txn is one copy-on-write transaction on a tree. Nodes are copied
// the first time they are owned, and the copies can be modified
// freely until the transaction root is published.
type txn struct {
	root   Layout
	newID  func() string
	clones map[Layout]Layout
	owned  map[Layout]bool
}

func newTxn(root Layout, newID func() string) *txn {
	return &txn{root: root, newID: newID, clones: map[Layout]Layout{}, owned: map[Layout]bool{}}
}

// own returns the modifiable copy of the given node.
func (t *txn) own(n Layout) Layout {
	if t.owned[n] {
		return n
	}
	if c, ok := t.clones[n]; ok {
		return c
	}
	c := n.clone()
	t.clones[n] = c
	t.owned[c] = true
	return c
}

// adopt marks a node created in this transaction as owned.
func (t *txn) adopt(n Layout) Layout {
	t.owned[n] = true
	return n
}

// ownPath owns every node of the path, from the root down, and
// rewrites the path and the parent links to point at the copies.
func (t *txn) ownPath(p Path) {
	var parent *Split
	for i := len(p) - 1; i >= 0; i-- {
		n := t.own(p[i].Node)
		if parent == nil {
			t.root = n
		} else {
			parent.Sections[p[i+1].Index] = n
		}
		p[i].Node = n
		parent, _ = n.(*Split)
	}
}

// pathTo returns the owned path to the given pane.
func (t *txn) pathTo(paneID string) Path {
	p := PanePath(t.root, paneID)
	if p != nil {
		t.ownPath(p)
	}
	return p
}

// resolve updates the section indexes of the path from the
// current children of its owned nodes, as insertions may have
// shifted them.
func (t *txn) resolve(p Path) {
	for i := 1; i < len(p); i++ {
		sp := p[i].Node.(*Split)
		if j := slices.Index(sp.Sections, p[i-1].Node); j >= 0 {
			p[i].Index = j
		}
	}
}

// insert places the pane at the given location relative to the
// pane at p[0]. p must be owned.
func (t *txn) insert(p Path, loc Locations, pane Pane) {
	st := p.Stack()
	idx := p[0].Index
	switch {
	case loc == Insert:
		st.Panes = slices.Insert(st.Panes, idx, pane)
		st.ActivePaneID = pane.ID
		return
	case loc == Center:
		st.Panes = append(st.Panes, pane)
		st.ActivePaneID = pane.ID
		return
	case !loc.IsEdge():
		slog.Debug("dock: insert with no location ignored", "pane", pane.ID)
		return
	}

	ns := t.adopt(&Stack{ID: t.newID(), Size: 0.5, ActivePaneID: pane.ID, Panes: []Pane{pane}})
	sp := p.Split()
	if sp == nil {
		nsp := &Split{ID: t.newID(), Size: 1, Direction: loc.Direction(), Sections: []Layout{st}}
		st.Size = 0.5
		at := 1
		if loc.IsBefore() {
			at = 0
		}
		nsp.Sections = slices.Insert(nsp.Sections, at, ns)
		t.root = t.adopt(nsp)
		return
	}

	si := p[1].Index
	if sp.Direction == loc.Direction() {
		sec := t.own(sp.Sections[si])
		sp.Sections[si] = sec
		sec.setSize(sec.LayoutSize() * 0.5)
		ns.setSize(sec.LayoutSize())
		at := si + 1
		if loc.IsBefore() {
			at = si
		}
		sp.Sections = slices.Insert(sp.Sections, at, ns)
		return
	}

	sec := t.own(sp.Sections[si])
	wrap := &Split{ID: t.newID(), Size: sec.LayoutSize(), Direction: sp.Direction.Other(), Sections: []Layout{sec}}
	sec.setSize(0.5)
	at := 1
	if loc.IsBefore() {
		at = 0
	}
	wrap.Sections = slices.Insert(wrap.Sections, at, ns)
	sp.Sections[si] = t.adopt(wrap)
}

// remove removes the pane at p[0]. p must be owned and resolved.
// An emptied stack is removed from its split, and a split left with
// a single section is replaced by that section, which takes over
// the size of the split.
func (t *txn) remove(p Path) {
	st := p.Stack()
	idx := p[0].Index
	removed := st.Panes[idx].ID

	// the root stack, or the only section of a root split, is kept
	// when emptied
	if len(st.Panes) > 1 || len(p) == 1 || len(p.Split().Sections) < 2 {
		st.Panes = slices.Delete(st.Panes, idx, idx+1)
		if removed == st.ActivePaneID && !slices.ContainsFunc(st.Panes, func(q Pane) bool { return q.ID == removed }) {
			st.ActivePaneID = ""
			if len(st.Panes) > 0 {
				st.ActivePaneID = st.Panes[min(idx, len(st.Panes)-1)].ID
			}
		}
		return
	}

	sp := p.Split()
	si := p[1].Index
	if len(sp.Sections) > 2 {
		sp.Sections = slices.Delete(sp.Sections, si, si+1)
		return
	}
	sib := t.own(sp.Sections[1-si])
	sib.setSize(sp.Size)
	if len(p) == 2 {
		t.root = sib
		return
	}
	gp := p[2].Node.(*Split)
	gp.Sections[p[2].Index] = sib
}
