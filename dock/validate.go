// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"slices"

	"cogentcore.org/dock/base/errors"
)

// nodePath returns the path to the node with the given id, with
// the node itself as element 0, or nil if it is not in the tree.
func nodePath(l Layout, id string) Path {
	if l == nil {
		return nil
	}
	if l.LayoutID() == id {
		return Path{{Node: l, Index: -1}}
	}
	if sp, ok := l.(*Split); ok {
		for i, s := range sp.Sections {
			if p := nodePath(s, id); p != nil {
				return append(p, Step{Node: sp, Index: i})
			}
		}
	}
	return nil
}

// HasID returns whether a node or pane in the tree has the given id.
func HasID(l Layout, id string) bool {
	found := false
	Walk(l, func(n Layout, depth int) bool {
		switch {
		case found:
		case n.LayoutID() == id:
			found = true
		default:
			if st, ok := n.(*Stack); ok {
				found = slices.ContainsFunc(st.Panes, func(p Pane) bool { return p.ID == id })
			}
		}
		return !found
	})
	return found
}

// Validate checks the structure of a layout tree, returning all
// problems found joined into one error:
//   - every node and pane has a non-empty unique id
//   - a split that is not the root has at least two sections
//   - a stack that is not the root, or the only section of the root,
//     has at least one pane
//   - the active pane of a stack is one of its panes
//   - sizes are not negative
func Validate(l Layout) error {
	if l == nil {
		return errors.New("dock: nil layout")
	}
	var errs []error
	ids := map[string]bool{}
	checkID := func(kind, id string) {
		switch {
		case id == "":
			errs = append(errs, errors.Errorf("dock: %s with empty id", kind))
		case ids[id]:
			errs = append(errs, errors.Errorf("dock: duplicate id %q", id))
		}
		ids[id] = true
	}
	Walk(l, func(n Layout, depth int) bool {
		root := depth == 0
		if n.LayoutSize() < 0 {
			errs = append(errs, errors.Errorf("dock: negative size %g of %q", n.LayoutSize(), n.LayoutID()))
		}
		switch n := n.(type) {
		case *Split:
			checkID("split", n.ID)
			switch {
			case len(n.Sections) == 0:
				errs = append(errs, errors.Errorf("dock: split %q has no sections", n.ID))
			case len(n.Sections) == 1 && !root:
				errs = append(errs, errors.Errorf("dock: split %q has a single section", n.ID))
			}
			if slices.Contains(n.Sections, nil) {
				errs = append(errs, errors.Errorf("dock: split %q has a nil section", n.ID))
			}
		case *Stack:
			checkID("stack", n.ID)
			if len(n.Panes) == 0 && !root && !soleSection(l, n) {
				errs = append(errs, errors.Errorf("dock: stack %q has no panes", n.ID))
			}
			for _, p := range n.Panes {
				checkID("pane", p.ID)
			}
			if len(n.Panes) > 0 && n.ActivePane() == nil {
				errs = append(errs, errors.Errorf("dock: active pane %q of stack %q not in stack", n.ActivePaneID, n.ID))
			}
		}
		return true
	})
	return errors.Join(errs...)
}

// soleSection returns whether st is the only section of the root split.
func soleSection(root Layout, st *Stack) bool {
	sp, ok := root.(*Split)
	return ok && len(sp.Sections) == 1 && sp.Sections[0] == Layout(st)
}
