// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"cogentcore.org/dock/base/errors"
	"cogentcore.org/dock/drag"
	"cogentcore.org/dock/events"
)

// TabPayloadType is the drag payload type of tab headers.
// The payload is the pane id.
const TabPayloadType = "dock/tab"

// ErrUnknownComponent is returned by [Factory.Make] for a component
// id that has not been registered.
var ErrUnknownComponent = errors.New("dock: unknown component")

// Factory makes the content of panes from their component ids.
type Factory struct {
	mu     sync.RWMutex
	makers map[string]func(p Pane) any
}

// NewFactory returns a new empty factory.
func NewFactory() *Factory {
	return &Factory{makers: map[string]func(p Pane) any{}}
}

// Register sets the function that makes the content of panes
// with the given component id.
func (f *Factory) Register(componentID string, fun func(p Pane) any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.makers[componentID] = fun
}

// Components returns the registered component ids, sorted.
func (f *Factory) Components() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.makers))
}

// Make makes the content of the given pane.
func (f *Factory) Make(p Pane) (any, error) {
	f.mu.RLock()
	fun, ok := f.makers[p.ComponentID]
	f.mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("%w: %q", ErrUnknownComponent, p.ComponentID)
	}
	return fun(p), nil
}

// Renderer draws layouts. It is implemented on top of a user
// interface toolkit, which reports user actions on the drawn splits
// and tabs back to the [View].
type Renderer interface {

	// Render draws the given layout, using the factory to make
	// the content of the panes.
	Render(l Layout, f *Factory)

	// ShowDropArea indicates where a dragged tab would be docked
	// in the given stack. [None] hides the indicator.
	ShowDropArea(stackID string, loc Locations)
}

// View connects a [Controller] to a [Renderer]: it renders every
// new layout, and turns tab and splitter actions into controller
// operations.
type View struct {
	Controller *Controller
	Factory    *Factory
	Renderer   Renderer

	// Relay connects tab drag sources with stack drop targets.
	Relay *drag.Relay

	unsubscribe func()
}

// NewView returns a new view that renders the layout of the given
// controller now and after every change, until [View.Close].
func NewView(c *Controller, f *Factory, r Renderer, relay *drag.Relay) *View {
	v := &View{Controller: c, Factory: f, Renderer: r, Relay: relay}
	v.unsubscribe = c.OnChange(v.render)
	v.render(c.Layout())
	return v
}

// Close stops rendering layout changes.
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

func (v *View) render(l Layout) {
	v.Renderer.Render(l, v.Factory)
}

// SelectTab activates the pane of a selected tab.
func (v *View) SelectTab(paneID string) {
	v.Controller.ActivatePane(paneID)
}

// CloseTab removes the pane of a closed tab, if it is closable,
// and returns whether it was removed.
func (v *View) CloseTab(paneID string) bool {
	p, _ := FindPane(v.Controller.Layout(), paneID)
	if p == nil || !p.Closable {
		return false
	}
	v.Controller.RemovePane(paneID)
	return true
}

// DropTab moves the pane of a tab dropped at the given location
// relative to the anchor pane. A drop on another tab header has
// location [None], and inserts the pane at that tab. Panes that are
// not movable are not moved.
func (v *View) DropTab(paneID, anchorID string, loc Locations) error {
	if loc == None {
		loc = Insert
	}
	p, _ := FindPane(v.Controller.Layout(), paneID)
	if p != nil && !p.Movable {
		slog.Debug("dock: drop of fixed pane ignored", "pane", paneID)
		return nil
	}
	_, err := v.Controller.MovePane(paneID, anchorID, loc)
	return err
}

// ResizeSplitter sets the sizes of the sections on either side of
// splitter handle index of the given split.
func (v *View) ResizeSplitter(splitID string, index int, first, second float64) {
	v.Controller.Resize(splitID, index, first, second)
}

// TabSource returns a drag source for the header of the tab of the
// given pane. A tap on it selects the tab.
func (v *View) TabSource(paneID string) *drag.Source {
	s := drag.NewSource(v.Relay, TabPayloadType, paneID)
	s.Gesture().OnTap = func(ev *events.Pointer) {
		v.SelectTab(paneID)
	}
	return s
}

// RegisterStack makes the content element of the given stack a
// drop target for tabs. bounds returns its current rectangle, which
// determines the drop location from the pointer position. Dropped
// tabs are docked relative to the active pane of the stack.
func (v *View) RegisterStack(el drag.ElementID, stackID string, bounds func() Rect) {
	area := func(ev *drag.DragEvent) Locations {
		if ev.Pointer == nil {
			return None
		}
		return AreaAt(bounds(), ev.Pointer.Pos)
	}
	show := func(ev *drag.DragEvent) {
		v.Renderer.ShowDropArea(stackID, area(ev))
	}
	v.Relay.Register(el, []string{TabPayloadType}, drag.DropFuncs{
		Enter:  show,
		Update: show,
		Leave: func(ev *drag.DragEvent) {
			v.Renderer.ShowDropArea(stackID, None)
		},
		OnDrop: func(ev *drag.DragEvent) {
			v.Renderer.ShowDropArea(stackID, None)
			loc := area(ev)
			paneID, ok := ev.Payload.(string)
			if loc == None || !ok {
				return
			}
			st, _ := Find(v.Controller.Layout(), stackID).(*Stack)
			if st == nil || st.ActivePaneID == "" {
				slog.Warn("dock: drop on unknown stack", "stack", stackID)
				return
			}
			errors.Log(v.DropTab(paneID, st.ActivePaneID, loc))
		},
	})
}
