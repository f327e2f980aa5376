// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit interprets pointer and wheel events on a 3D viewport
// as incremental camera motion (pan, orbit, dolly, roll), including
// an inertial release phase, polled once per rendered frame.
package orbit

import (
	"cogentcore.org/dock/events"
	"github.com/chewxy/math32"
)

var (
	// ReleaseDecay is the factor applied to the residual motion on
	// every poll after the gesture has been released.
	ReleaseDecay = float32(0.85)

	// StopEpsilon is the residual |dx|+|dy| below which the release
	// phase ends.
	StopEpsilon = float32(0.1)

	// WheelScale is the scale change per wheel tick.
	WheelScale = float32(0.07)

	// DollyScale is the scale change per pixel of vertical movement
	// in [Dolly] mode.
	DollyScale = float32(0.0075)
)

// Modes are the kinds of camera motion.
type Modes int32 //enums:enum

const (
	ModeOff Modes = iota
	Pan
	Orbit
	Dolly
	PanDolly
	Roll
)

var modesNames = [...]string{"Off", "Pan", "Orbit", "Dolly", "PanDolly", "Roll"}

func (m Modes) String() string {
	if m < 0 || int(m) >= len(modesNames) {
		return "Modes(?)"
	}
	return modesNames[m]
}

// Phases are the phases of a gesture.
type Phases int32 //enums:enum

const (
	PhaseOff Phases = iota

	// Active is while the primary contact is down.
	Active

	// Release is after the primary contact went up, while the
	// residual motion decays.
	Release
)

var phasesNames = [...]string{"Off", "Active", "Release"}

func (p Phases) String() string {
	if p < 0 || int(p) >= len(phasesNames) {
		return "Phases(?)"
	}
	return phasesNames[p]
}

// DeltaPose is the camera motion since the previous poll.
// Scale is multiplicative and 1 means no change; all other
// fields are additive.
type DeltaPose struct {
	X, Y  float32
	Head  float32
	Pitch float32
	Scale float32
	Roll  float32
}

// Manip is an [events.Handler] that accumulates pointer movement
// and wheel ticks, and converts them into a [DeltaPose] when polled.
type Manip struct {
	mode  Modes
	phase Phases

	deltaX     float32
	deltaY     float32
	deltaPinch float32
	deltaWheel float32
	prevPinch  float32
}

// New returns a new orbit manipulator.
func New() *Manip {
	return &Manip{deltaPinch: 1}
}

// Mode returns the current mode.
func (m *Manip) Mode() Modes {
	return m.mode
}

// Phase returns the current phase.
func (m *Manip) Phase() Phases {
	return m.phase
}

// DeltaPose returns the motion accumulated since the last call,
// or nil if there is nothing to report this frame. It is meant to be
// called once per frame: in the release phase every call decays the
// residual motion by [ReleaseDecay] until it falls below [StopEpsilon].
func (m *Manip) DeltaPose() *DeltaPose {
	wheel := float32(1)
	if m.deltaWheel != 0 {
		wheel = m.deltaWheel*WheelScale + 1
		m.deltaWheel = 0
	}

	var pose *DeltaPose
	switch m.phase {
	case Active:
		if m.deltaX != 0 || m.deltaY != 0 || m.deltaPinch != 1 {
			pose = m.pose()
			m.deltaX = 0
			m.deltaY = 0
			m.deltaPinch = 1
		}
	case Release:
		m.deltaX *= ReleaseDecay
		m.deltaY *= ReleaseDecay
		m.deltaPinch = 1
		pose = m.pose()
		if math32.Abs(m.deltaX)+math32.Abs(m.deltaY) < StopEpsilon {
			m.mode = ModeOff
			m.phase = PhaseOff
			m.deltaX = 0
			m.deltaY = 0
		}
	}

	if wheel != 1 {
		if pose == nil {
			pose = &DeltaPose{Scale: 1}
		}
		pose.Scale *= wheel
	}
	return pose
}

func (m *Manip) pose() *DeltaPose {
	d := &DeltaPose{Scale: 1}
	switch m.mode {
	case Orbit:
		d.Head = m.deltaX
		d.Pitch = m.deltaY
	case Pan:
		d.X = m.deltaX
		d.Y = m.deltaY
	case Roll:
		d.Roll = m.deltaX
	case Dolly:
		d.Scale = m.deltaY*DollyScale + 1
	case PanDolly:
		d.X = m.deltaX
		d.Y = m.deltaY
		d.Scale = 1 / ((m.deltaPinch-1)*0.5 + 1)
	}
	return d
}

func (m *Manip) OnPointer(ev *events.Pointer) bool {
	if ev.Primary {
		switch ev.Type {
		case events.PointerDown:
			m.phase = Active
		case events.PointerUp:
			m.phase = Release
			return true
		}
	}
	if ev.Type == events.PointerDown {
		m.mode = ModeFromEvent(ev)
	}

	m.deltaX += ev.Movement.X
	m.deltaY += ev.Movement.Y

	if ev.Count == 2 {
		d := ev.Positions[1].Pos.Sub(ev.Positions[0].Pos)
		dist := math32.Sqrt(d.X*d.X + d.Y*d.Y)
		prev := m.prevPinch
		if prev == 0 {
			prev = dist
		}
		if prev > 0 {
			m.deltaPinch *= dist / prev
		}
		m.prevPinch = dist
	} else {
		m.deltaPinch = 1
		m.prevPinch = 0
	}
	return true
}

func (m *Manip) OnTrigger(ev *events.Trigger) bool {
	if ev.Type != events.Wheel {
		return false
	}
	m.deltaWheel += min(max(ev.Wheel, -1), 1)
	return true
}

// ModeFromEvent returns the mode selected by a pointer down event.
// Mouse and pen: left orbits, left+Control pans, left+Alt dollies,
// right pans or rolls with Alt, middle dollies. Touch: one finger
// orbits, two pan and dolly, more pan.
func ModeFromEvent(ev *events.Pointer) Modes {
	if ev.Source == events.Touch {
		switch ev.Count {
		case 1:
			return Orbit
		case 2:
			return PanDolly
		default:
			return Pan
		}
	}
	switch ev.Button {
	case events.Left:
		switch {
		case ev.Mods.HasFlag(events.Control):
			return Pan
		case ev.Mods.HasFlag(events.Alt):
			return Dolly
		}
		return Orbit
	case events.Right:
		if ev.Mods.HasFlag(events.Alt) {
			return Roll
		}
		return Pan
	case events.Middle:
		return Dolly
	}
	return ModeOff
}
