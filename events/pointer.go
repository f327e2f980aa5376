// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Vec2 is a 2D position or displacement in device pixels.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) DivScalar(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Contact is one currently pressed physical point of contact.
// The ID is unique among the contacts active at the same time.
type Contact struct {
	ID  int
	Pos Vec2
}

// Raw is a raw per-contact notification from the host input layer.
type Raw struct {
	Contact

	Source  Sources
	Button  Buttons
	Primary bool
	Mods    Modifiers
}

// Pinch are the two-contact metrics of a pointer event. They are
// only meaningful when exactly two contacts are active; otherwise
// Factor and DeltaFactor are 1 and the rest is zero.
type Pinch struct {
	// Distance between the two contacts.
	Distance float32

	// Factor is Distance relative to the distance when the
	// second contact went down.
	Factor float32

	// DeltaFactor is Distance relative to the previous event.
	DeltaFactor float32

	// Angle of the line from the first to the second contact, in radians.
	Angle float32

	// DeltaAngle is the change of Angle since the previous event.
	DeltaAngle float32
}

// Pointer is a semantic pointer event. It is a snapshot and is
// never modified after it has been dispatched.
type Pointer struct {
	Type    Types
	Source  Sources
	Button  Buttons
	Primary bool
	Mods    Modifiers

	// ID is the id of the contact that caused this event.
	ID int

	// Pos is the position of the contact that caused this event.
	Pos Vec2

	// Positions are all active contacts, in the order they went down.
	// For PointerUp, the released contact is no longer included.
	Positions []Contact

	// Count is len(Positions).
	Count int

	// Center is the centroid of the active contacts.
	Center Vec2

	// Movement is the change of Center since the previous event.
	// It is zero for PointerDown and PointerUp.
	Movement Vec2

	// PrimaryPos is the last known position of the primary contact.
	PrimaryPos Vec2

	Pinch Pinch

	// Cancelled is set on PointerUp events caused by a cancel
	// rather than a release.
	Cancelled bool
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Source: %v, ID: %d, Count: %d, Center: %v, Movement: %v, Mods: %v}", ev.Type, ev.Source, ev.ID, ev.Count, ev.Center, ev.Movement, ev.Mods)
}

// Trigger is a wheel, double click, or context menu event.
// Triggers do not take part in contact tracking.
type Trigger struct {
	Type   Types
	Wheel  float32
	Center Vec2
	Mods   Modifiers
}

func (ev *Trigger) String() string {
	return fmt.Sprintf("%v{Wheel: %v, Center: %v, Mods: %v}", ev.Type, ev.Wheel, ev.Center, ev.Mods)
}
