// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"log/slog"
	"slices"

	"cogentcore.org/dock/base/errors"
	"cogentcore.org/dock/undo"
	"github.com/google/uuid"
)

var (
	// ErrPaneNotFound is returned when a moved pane is not in the layout.
	ErrPaneNotFound = errors.New("dock: pane not found")

	// ErrAnchorNotFound is returned when the anchor pane of a move
	// is not in the layout.
	ErrAnchorNotFound = errors.New("dock: anchor pane not found")
)

// Action names, as recorded in the undo stack.
const (
	ActionInitial  = "Initial"
	ActionResize   = "Resize"
	ActionActivate = "Activate Pane"
	ActionInsert   = "Insert Pane"
	ActionRemove   = "Remove Pane"
	ActionMove     = "Move Pane"
	ActionSet      = "Set Layout"
)

// Controller holds the current layout tree and applies operations
// to it. Every operation that changes the tree publishes a new root,
// increments the version, records the new root in the undo stack,
// and notifies the change listeners. Operations that return a
// [Layout] return the root from before the operation.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	layout    Layout
	version   int
	newID     func() string
	undo      undo.Stack[Layout]
	listeners []listener
	nextKey   int
}

type listener struct {
	key int
	fun func(l Layout)
}

// Option configures a [Controller].
type Option func(c *Controller)

// WithIDGenerator sets the function used to make ids for new panes,
// stacks, and splits. The default makes random UUIDs.
func WithIDGenerator(fun func() string) Option {
	return func(c *Controller) {
		c.newID = fun
	}
}

// WithUndoLimit sets the maximum number of undo records kept.
func WithUndoLimit(n int) Option {
	return func(c *Controller) {
		c.undo.Max = n
	}
}

// NewController returns a new controller for the given initial
// layout. A nil layout starts with an empty root stack.
func NewController(initial Layout, opts ...Option) *Controller {
	c := &Controller{newID: uuid.NewString}
	for _, o := range opts {
		o(c)
	}
	if initial == nil {
		initial = &Stack{ID: c.newID(), Size: 1}
	}
	c.layout = initial
	c.undo.Save(ActionInitial, initial)
	return c
}

// Layout returns the current layout. It must not be modified.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Version returns the number of changes made so far.
func (c *Controller) Version() int {
	return c.version
}

// OnChange adds a function that is called with the new layout
// after every change, and returns a function that removes it.
func (c *Controller) OnChange(fun func(l Layout)) (unsubscribe func()) {
	key := c.nextKey
	c.nextKey++
	c.listeners = append(c.listeners, listener{key: key, fun: fun})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(ls listener) bool { return ls.key == key })
	}
}

func (c *Controller) publish(action string, l Layout, record bool) Layout {
	prev := c.layout
	c.layout = l
	c.version++
	if record {
		c.undo.Save(action, l)
	}
	for _, ls := range slices.Clone(c.listeners) {
		ls.fun(l)
	}
	return prev
}

func (c *Controller) txn() *txn {
	return newTxn(c.layout, c.uniqueID)
}

// uniqueID returns a new id that is not in the current layout.
func (c *Controller) uniqueID() string {
	id := c.newID()
	for range 10 {
		if !HasID(c.layout, id) {
			break
		}
		slog.Warn("dock: generated id already in use", "id", id)
		id = c.newID()
	}
	return id
}

// Resize sets the sizes of the sections at index and index+1 of
// the split with the given id. It does nothing if there is no such
// split or section.
func (c *Controller) Resize(splitID string, index int, first, second float64) Layout {
	p := nodePath(c.layout, splitID)
	if p == nil {
		slog.Warn("dock: resize of unknown split", "split", splitID)
		return c.layout
	}
	if sp, ok := p[0].Node.(*Split); !ok || index < 0 || index+1 >= len(sp.Sections) {
		slog.Warn("dock: resize of invalid section", "split", splitID, "index", index)
		return c.layout
	}
	t := c.txn()
	t.ownPath(p)
	sp := p[0].Node.(*Split)
	for i, size := range []float64{first, second} {
		sec := t.own(sp.Sections[index+i])
		sp.Sections[index+i] = sec
		sec.setSize(size)
	}
	return c.publish(ActionResize, t.root, true)
}

// ActivatePane makes the pane with the given id the active pane of
// its stack. It does nothing if there is no such pane or it is
// already active.
func (c *Controller) ActivatePane(paneID string) Layout {
	p := PanePath(c.layout, paneID)
	if p == nil {
		slog.Warn("dock: activate of unknown pane", "pane", paneID)
		return c.layout
	}
	if p.Stack().ActivePaneID == paneID {
		return c.layout
	}
	t := c.txn()
	t.ownPath(p)
	p.Stack().ActivePaneID = paneID
	return c.publish(ActionActivate, t.root, true)
}

// InsertPane creates a new active pane at the given location relative
// to the pane anchorID, and returns its id. An empty anchorID refers
// to the end of the root stack, if the root is a stack. It does
// nothing, and returns an empty id, if there is no such anchor or
// the location is [None].
func (c *Controller) InsertPane(anchorID string, loc Locations, title string, closable bool, componentID string) (prev Layout, paneID string) {
	if loc == None {
		return c.layout, ""
	}
	t := c.txn()
	var p Path
	if st, ok := c.layout.(*Stack); ok && anchorID == "" {
		p = Path{{Node: st, Index: len(st.Panes)}}
		t.ownPath(p)
		if len(st.Panes) == 0 {
			loc = Center
		}
	} else {
		p = t.pathTo(anchorID)
	}
	if p == nil {
		slog.Warn("dock: insert at unknown anchor", "anchor", anchorID)
		return c.layout, ""
	}
	pane := Pane{ID: c.uniqueID(), Title: title, Closable: closable, Movable: true, ComponentID: componentID}
	t.insert(p, loc, pane)
	return c.publish(ActionInsert, t.root, true), pane.ID
}

// RemovePane removes the pane with the given id. A stack left empty
// is removed from its split, and a split left with one section is
// replaced by that section. It does nothing if there is no such pane.
func (c *Controller) RemovePane(paneID string) Layout {
	t := c.txn()
	p := t.pathTo(paneID)
	if p == nil {
		slog.Warn("dock: remove of unknown pane", "pane", paneID)
		return c.layout
	}
	t.remove(p)
	return c.publish(ActionRemove, t.root, true)
}

// MovePane moves the pane with the given id to the given location
// relative to the pane anchorID, as one operation. It returns an
// error wrapping [ErrPaneNotFound] or [ErrAnchorNotFound] if either
// pane is not in the layout.
//
// Within one stack, a pane inserted at an anchor further right lands
// after the anchor, and one inserted at an anchor further left lands
// before it. Moving the only pane of a stack onto itself, or moving
// to [None], does nothing.
func (c *Controller) MovePane(paneID, anchorID string, loc Locations) (Layout, error) {
	pp := PanePath(c.layout, paneID)
	if pp == nil {
		return c.layout, errors.Errorf("%w: %q", ErrPaneNotFound, paneID)
	}
	ap := PanePath(c.layout, anchorID)
	if ap == nil {
		return c.layout, errors.Errorf("%w: %q", ErrAnchorNotFound, anchorID)
	}
	pane := pp.Stack().Panes[pp[0].Index]
	if (paneID == anchorID && len(pp.Stack().Panes) == 1) || loc == None {
		return c.layout, nil
	}

	t := c.txn()
	t.ownPath(ap)
	t.ownPath(pp)
	if ap.Stack() == pp.Stack() && loc == Insert {
		switch {
		case ap[0].Index < pp[0].Index:
			pp[0].Index++
		case pp[0].Index < ap[0].Index:
			ap[0].Index++
		}
	}
	t.insert(ap, loc, pane)
	t.resolve(pp)
	t.remove(pp)
	return c.publish(ActionMove, t.root, true), nil
}

// SetLayout replaces the whole layout, recording it in the undo stack.
func (c *Controller) SetLayout(l Layout) Layout {
	return c.publish(ActionSet, l, true)
}

// CanUndo returns whether there is a change to undo.
func (c *Controller) CanUndo() bool {
	return c.undo.CanUndo()
}

// CanRedo returns whether there is an undone change to redo.
func (c *Controller) CanRedo() bool {
	return c.undo.CanRedo()
}

// Undo reinstates the layout from before the last change, returning
// the name of the undone action. ok is false if there is nothing
// to undo.
func (c *Controller) Undo() (action string, ok bool) {
	action, l, ok := c.undo.Undo()
	if ok {
		c.publish(action, l, false)
	}
	return action, ok
}

// Redo reinstates the layout from after the last undone change,
// returning the name of the redone action. ok is false if there is
// nothing to redo.
func (c *Controller) Redo() (action string, ok bool) {
	action, l, ok := c.undo.Redo()
	if ok {
		c.publish(action, l, false)
	}
	return action, ok
}
