// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drag turns the primary contact of a surface into press, tap,
// and drag gestures, and relays typed drag and drop payloads between
// drag sources and drop targets that do not know about each other.
package drag

import (
	"cogentcore.org/dock/events"
	"github.com/chewxy/math32"
)

// Threshold is the Manhattan distance in device pixels from the press
// position that the primary contact has to exceed to start a drag.
var Threshold = float32(2)

// States are the states of a [Draggable].
type States int32 //enums:enum

const (
	// Idle is when no primary contact is pressed.
	Idle States = iota

	// Pressed is after the primary contact went down, as long as it
	// has not moved farther than [Threshold].
	Pressed

	// Dragging is after the primary contact moved farther than
	// [Threshold], until it is released.
	Dragging
)

var statesNames = [...]string{"Idle", "Pressed", "Dragging"}

func (s States) String() string {
	if s < 0 || int(s) >= len(statesNames) {
		return "States(?)"
	}
	return statesNames[s]
}

// Draggable is an [events.Handler] that classifies the primary contact
// into press, release, tap, double tap, and drag begin / move / end.
// All callbacks are optional. Secondary contacts are ignored.
type Draggable struct {

	// Disabled prevents drags from starting; presses and taps still work.
	Disabled bool

	OnPress     func(ev *events.Pointer)
	OnRelease   func(ev *events.Pointer)
	OnTap       func(ev *events.Pointer)
	OnDoubleTap func(ev *events.Trigger)

	OnDragBegin func(ev *events.Pointer)

	// OnDragMove receives the movement since the previous move.
	OnDragMove func(ev *events.Pointer, delta events.Vec2)
	OnDragEnd  func(ev *events.Pointer)

	OnContextMenu func(ev *events.Trigger)

	state     States
	id        int
	start     events.Vec2
	last      events.Vec2
	cancelled bool
}

// State returns the current state.
func (d *Draggable) State() States {
	return d.state
}

// IsDragging returns whether a drag is in progress.
func (d *Draggable) IsDragging() bool {
	return d.state == Dragging
}

// Cancelled returns whether the last gesture was ended by a
// contact cancel rather than a release.
func (d *Draggable) Cancelled() bool {
	return d.cancelled
}

// Start returns the position where the current or last gesture began.
func (d *Draggable) Start() events.Vec2 {
	return d.start
}

func (d *Draggable) OnPointer(ev *events.Pointer) bool {
	switch ev.Type {
	case events.PointerDown:
		if !ev.Primary {
			return false
		}
		d.state = Pressed
		d.id = ev.ID
		d.start = ev.Pos
		d.last = ev.Pos
		d.cancelled = false
		if d.OnPress != nil {
			d.OnPress(ev)
		}
		return true

	case events.PointerMove:
		if d.state == Idle || ev.ID != d.id {
			return false
		}
		delta := ev.Pos.Sub(d.last)
		d.last = ev.Pos
		if d.state == Pressed {
			if d.Disabled {
				return true
			}
			dist := ev.Pos.Sub(d.start)
			if math32.Abs(dist.X)+math32.Abs(dist.Y) <= Threshold {
				return true
			}
			d.state = Dragging
			if d.OnDragBegin != nil {
				d.OnDragBegin(ev)
			}
		}
		if d.OnDragMove != nil {
			d.OnDragMove(ev, delta)
		}
		return true

	case events.PointerUp:
		if d.state == Idle || ev.ID != d.id {
			return false
		}
		wasDragging := d.state == Dragging
		d.state = Idle
		d.cancelled = ev.Cancelled
		if wasDragging && d.OnDragEnd != nil {
			d.OnDragEnd(ev)
		}
		if d.OnRelease != nil {
			d.OnRelease(ev)
		}
		if !wasDragging && !ev.Cancelled && d.OnTap != nil {
			d.OnTap(ev)
		}
		return true
	}
	return false
}

func (d *Draggable) OnTrigger(ev *events.Trigger) bool {
	if d.state == Dragging {
		return false
	}
	switch ev.Type {
	case events.DoubleClick:
		if d.OnDoubleTap != nil {
			d.OnDoubleTap(ev)
			return true
		}
	case events.ContextMenu:
		if d.OnContextMenu != nil {
			d.OnContextMenu(ev)
			return true
		}
	}
	return false
}
