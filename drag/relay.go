// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"log/slog"
	"slices"

	"cogentcore.org/dock/events"
)

// ElementID identifies an element of the user interface to the [Relay].
// The empty ElementID means no element.
type ElementID string

// HitTester returns the innermost element at the given position,
// or "" if there is none.
type HitTester func(pos events.Vec2) ElementID

// DragEvent is sent to drop targets during a drag.
type DragEvent struct {
	// Pointer is the pointer event that caused this drag event.
	Pointer *events.Pointer

	PayloadType string
	Payload     any

	// DropTarget is the element that accepted the payload, if any.
	// During a probe it is set once, by the first acceptor.
	DropTarget ElementID

	Source *Source
}

// DropHandler receives the drag and drop notifications of one drop target.
type DropHandler interface {
	DragEnter(ev *DragEvent)
	DragUpdate(ev *DragEvent)
	DragLeave(ev *DragEvent)
	Drop(ev *DragEvent)
}

// DropFuncs is a [DropHandler] made of optional callbacks.
type DropFuncs struct {
	Enter  func(ev *DragEvent)
	Update func(ev *DragEvent)
	Leave  func(ev *DragEvent)
	OnDrop func(ev *DragEvent)
}

func (f DropFuncs) DragEnter(ev *DragEvent) {
	if f.Enter != nil {
		f.Enter(ev)
	}
}

func (f DropFuncs) DragUpdate(ev *DragEvent) {
	if f.Update != nil {
		f.Update(ev)
	}
}

func (f DropFuncs) DragLeave(ev *DragEvent) {
	if f.Leave != nil {
		f.Leave(ev)
	}
}

func (f DropFuncs) Drop(ev *DragEvent) {
	if f.OnDrop != nil {
		f.OnDrop(ev)
	}
}

type dropTarget struct {
	accepts []string
	handler DropHandler
}

// Relay connects drag sources with drop targets. Drop targets register
// the payload types they accept; the relay keeps the parent of each
// element so that a probe can walk outward from the element under the
// pointer to the first ancestor that accepts the payload.
type Relay struct {

	// HitTest finds the element under the pointer.
	HitTest HitTester

	parents map[ElementID]ElementID
	targets map[ElementID]*dropTarget
}

// NewRelay returns a new relay using the given hit tester.
func NewRelay(hit HitTester) *Relay {
	return &Relay{
		HitTest: hit,
		parents: map[ElementID]ElementID{},
		targets: map[ElementID]*dropTarget{},
	}
}

// SetParent records the parent of an element. An element without a
// parent is a root.
func (r *Relay) SetParent(el, parent ElementID) {
	if parent == "" {
		delete(r.parents, el)
		return
	}
	r.parents[el] = parent
}

// Parent returns the parent of the element, or "".
func (r *Relay) Parent(el ElementID) ElementID {
	return r.parents[el]
}

// RemoveElement forgets the element's parent and drop target
// registration. Children of the element keep pointing at it.
func (r *Relay) RemoveElement(el ElementID) {
	delete(r.parents, el)
	delete(r.targets, el)
}

// Register makes the element a drop target for the given payload types.
// Registering again replaces the previous registration.
func (r *Relay) Register(el ElementID, acceptedTypes []string, h DropHandler) {
	r.targets[el] = &dropTarget{accepts: slices.Clone(acceptedTypes), handler: h}
}

// Unregister removes the drop target registration of the element.
func (r *Relay) Unregister(el ElementID) {
	delete(r.targets, el)
}

// Probe walks from the element outward to the root and stops at
// the first drop target that accepts the payload type of the event,
// which it writes into DropTarget and returns. It returns "" and
// leaves the event unchanged if no drop target accepts it.
func (r *Relay) Probe(el ElementID, ev *DragEvent) ElementID {
	seen := map[ElementID]bool{}
	for cur := el; cur != ""; cur = r.parents[cur] {
		if seen[cur] {
			slog.Warn("drag: element parent cycle", "element", cur)
			return ""
		}
		seen[cur] = true
		if t, ok := r.targets[cur]; ok && slices.Contains(t.accepts, ev.PayloadType) {
			ev.DropTarget = cur
			return cur
		}
	}
	return ""
}

func (r *Relay) handler(el ElementID) DropHandler {
	t, ok := r.targets[el]
	if !ok {
		return nil
	}
	return t.handler
}

func (r *Relay) enter(el ElementID, ev *DragEvent) {
	if h := r.handler(el); h != nil {
		h.DragEnter(ev)
	}
}

func (r *Relay) update(el ElementID, ev *DragEvent) {
	if h := r.handler(el); h != nil {
		h.DragUpdate(ev)
	}
}

func (r *Relay) leave(el ElementID, ev *DragEvent) {
	if h := r.handler(el); h != nil {
		h.DragLeave(ev)
	}
}

func (r *Relay) drop(el ElementID, ev *DragEvent) {
	if h := r.handler(el); h != nil {
		h.Drop(ev)
	}
}
