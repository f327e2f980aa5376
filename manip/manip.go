// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manip normalizes raw mouse, pen, and touch contacts on one
// interactive surface into semantic [events.Pointer] and
// [events.Trigger] events.
package manip

import (
	"log/slog"
	"slices"

	"cogentcore.org/dock/events"
	"github.com/chewxy/math32"
)

// Capturer acquires and releases exclusive delivery of a contact
// to the surface, such as pointer capture in a windowing system.
type Capturer interface {
	Capture(id int)
	Release(id int)
}

// Target tracks the active contacts of one interactive surface and
// sends semantic events to its [events.Handler], or to its
// [events.Funcs] if no Handler is set. Exactly one of them receives
// each event.
//
// Only one input source (mouse, pen, or touch) can be active at a
// time: contacts from another source are rejected until all active
// contacts have been released.
type Target struct {

	// Handler receives the events. It takes priority over Funcs.
	Handler events.Handler

	// Funcs are the callbacks used if Handler is nil.
	Funcs events.Funcs

	// Capture requests contact capture from Capturer on
	// contact down, and releases it on contact up or cancel.
	Capture bool

	// Capturer is used if Capture is set.
	Capturer Capturer

	contacts []events.Contact
	source   events.Sources
	center   events.Vec2
	primary  events.Vec2

	pinching       bool
	pinchStart     float32
	pinchLast      float32
	pinchLastAngle float32
}

// Source returns the input source that is currently active,
// or [events.NoSource].
func (t *Target) Source() events.Sources {
	return t.source
}

// Contacts returns a copy of the active contacts, in the order
// they went down.
func (t *Target) Contacts() []events.Contact {
	return slices.Clone(t.contacts)
}

// Center returns the current centroid. With no active contacts it
// is the last known centroid.
func (t *Target) Center() events.Vec2 {
	return t.center
}

func (t *Target) index(id int) int {
	return slices.IndexFunc(t.contacts, func(c events.Contact) bool { return c.ID == id })
}

// ContactDown registers a new contact and sends a PointerDown event.
// It returns false without doing anything if a different source
// is active. Otherwise it returns whether the event was consumed.
func (t *Target) ContactDown(raw events.Raw) bool {
	if t.source != events.NoSource && raw.Source != t.source {
		slog.Debug("manip: contact rejected, other source active", "source", raw.Source, "active", t.source)
		return false
	}
	if i := t.index(raw.ID); i >= 0 {
		t.contacts[i] = raw.Contact
	} else {
		t.contacts = append(t.contacts, raw.Contact)
	}
	t.source = raw.Source
	if t.Capture && t.Capturer != nil {
		t.Capturer.Capture(raw.ID)
	}
	return t.dispatch(t.pointer(events.PointerDown, raw))
}

// ContactMove updates the position of an active contact and sends
// a PointerMove event carrying the movement of the centroid.
// Moves of contacts that are not active, such as hovering,
// are ignored and return false.
func (t *Target) ContactMove(raw events.Raw) bool {
	i := t.index(raw.ID)
	if i < 0 {
		return false
	}
	t.contacts[i] = raw.Contact
	return t.dispatch(t.pointer(events.PointerMove, raw))
}

// ContactUp removes a released contact and sends a PointerUp event.
// An up for a contact that is not active is logged and ignored.
func (t *Target) ContactUp(raw events.Raw) bool {
	return t.upOrCancel(raw, false)
}

// ContactCancel is like [Target.ContactUp] for a contact whose
// gesture was aborted by the system. The event has Cancelled set.
func (t *Target) ContactCancel(raw events.Raw) bool {
	return t.upOrCancel(raw, true)
}

func (t *Target) upOrCancel(raw events.Raw, cancelled bool) bool {
	i := t.index(raw.ID)
	if i < 0 {
		slog.Warn("manip: orphan contact up/cancel ignored", "id", raw.ID, "source", raw.Source, "cancelled", cancelled)
		return false
	}
	t.contacts = slices.Delete(t.contacts, i, i+1)
	if t.Capture && t.Capturer != nil {
		t.Capturer.Release(raw.ID)
	}
	if len(t.contacts) == 0 {
		t.source = events.NoSource
	}
	ev := t.pointer(events.PointerUp, raw)
	ev.Cancelled = cancelled
	return t.dispatch(ev)
}

// Reset drops all active contacts without sending events,
// releasing any captures.
func (t *Target) Reset() {
	if t.Capture && t.Capturer != nil {
		for _, c := range t.contacts {
			t.Capturer.Release(c.ID)
		}
	}
	t.contacts = nil
	t.source = events.NoSource
	t.resetPinch()
}

// Wheel sends a Wheel trigger with the given delta. It returns
// whether the handler consumed it, in which case the host should
// suppress the default action.
func (t *Target) Wheel(pos events.Vec2, delta float32, mods events.Modifiers) bool {
	return t.trigger(&events.Trigger{Type: events.Wheel, Wheel: delta, Center: pos, Mods: mods})
}

// DoubleClick sends a DoubleClick trigger. It returns whether the
// handler consumed it, in which case the host should suppress the
// default action.
func (t *Target) DoubleClick(pos events.Vec2, mods events.Modifiers) bool {
	return t.trigger(&events.Trigger{Type: events.DoubleClick, Center: pos, Mods: mods})
}

// ContextMenu sends a ContextMenu trigger. The native context menu
// is always suppressed, so it returns true whether or not the
// handler consumed the event.
func (t *Target) ContextMenu(pos events.Vec2, mods events.Modifiers) bool {
	t.trigger(&events.Trigger{Type: events.ContextMenu, Center: pos, Mods: mods})
	return true
}

func (t *Target) dispatch(ev *events.Pointer) bool {
	return events.Resolve(t.Handler, t.Funcs).OnPointer(ev)
}

func (t *Target) trigger(ev *events.Trigger) bool {
	return events.Resolve(t.Handler, t.Funcs).OnTrigger(ev)
}

// pointer builds the event for the current contact set and
// updates the centroid and pinch state.
func (t *Target) pointer(typ events.Types, raw events.Raw) *events.Pointer {
	if raw.Primary {
		t.primary = raw.Pos
	}
	n := len(t.contacts)
	center := t.center
	if n > 0 {
		var sum events.Vec2
		for _, c := range t.contacts {
			sum = sum.Add(c.Pos)
		}
		center = sum.DivScalar(float32(n))
	}
	var movement events.Vec2
	if typ == events.PointerMove {
		movement = center.Sub(t.center)
	}
	t.center = center

	ev := &events.Pointer{
		Type:       typ,
		Source:     raw.Source,
		Button:     raw.Button,
		Primary:    raw.Primary,
		Mods:       raw.Mods,
		ID:         raw.ID,
		Pos:        raw.Pos,
		Positions:  slices.Clone(t.contacts),
		Count:      n,
		Center:     center,
		Movement:   movement,
		PrimaryPos: t.primary,
		Pinch:      t.pinch(),
	}
	return ev
}

func (t *Target) resetPinch() {
	t.pinching = false
	t.pinchStart = 0
	t.pinchLast = 0
	t.pinchLastAngle = 0
}

// pinch computes the two-contact metrics. Any other contact
// count ends the current pinch.
func (t *Target) pinch() events.Pinch {
	p := events.Pinch{Factor: 1, DeltaFactor: 1}
	if len(t.contacts) != 2 {
		t.resetPinch()
		return p
	}
	d := t.contacts[1].Pos.Sub(t.contacts[0].Pos)
	p.Distance = math32.Sqrt(d.X*d.X + d.Y*d.Y)
	p.Angle = math32.Atan2(d.Y, d.X)
	if !t.pinching {
		t.pinching = true
		t.pinchStart = p.Distance
		t.pinchLast = p.Distance
		t.pinchLastAngle = p.Angle
	}
	if t.pinchStart > 0 {
		p.Factor = p.Distance / t.pinchStart
	}
	if t.pinchLast > 0 {
		p.DeltaFactor = p.Distance / t.pinchLast
	}
	p.DeltaAngle = deltaRadians(t.pinchLastAngle, p.Angle)
	t.pinchLast = p.Distance
	t.pinchLastAngle = p.Angle
	return p
}

// deltaRadians returns the signed difference to - from,
// wrapped into [-Pi, Pi).
func deltaRadians(from, to float32) float32 {
	d := to - from
	for d >= math32.Pi {
		d -= 2 * math32.Pi
	}
	for d < -math32.Pi {
		d += 2 * math32.Pi
	}
	return d
}
