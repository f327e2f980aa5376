// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the semantic pointer and trigger events
// produced from raw mouse, pen, and touch input, and the handler
// interfaces that receive them.
package events

// Types is the type of a semantic event.
type Types int32 //enums:enum

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// PointerDown happens when a contact is pressed on a surface.
	// Its movement is always zero.
	PointerDown

	// PointerMove happens when an active contact moves. It carries
	// the movement of the centroid of all active contacts.
	PointerMove

	// PointerUp happens when a contact is released or cancelled.
	// Its movement is always zero.
	PointerUp

	// Wheel is a scroll wheel tick.
	Wheel

	// DoubleClick is a double click or double tap.
	DoubleClick

	// ContextMenu is a request for a context menu, typically
	// from the right mouse button or a long press.
	ContextMenu
)

var typesNames = [...]string{"UnknownType", "PointerDown", "PointerMove", "PointerUp", "Wheel", "DoubleClick", "ContextMenu"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typesNames) {
		return "Types(?)"
	}
	return typesNames[t]
}

// IsPointer returns whether the type is one of the pointer types.
func (t Types) IsPointer() bool {
	return t >= PointerDown && t <= PointerUp
}

// Sources is the kind of input device a contact comes from.
// Only one source can be active on a surface at a time.
type Sources int32 //enums:enum

const (
	NoSource Sources = iota
	Mouse
	Pen
	Touch
)

var sourcesNames = [...]string{"NoSource", "Mouse", "Pen", "Touch"}

func (s Sources) String() string {
	if s < 0 || int(s) >= len(sourcesNames) {
		return "Sources(?)"
	}
	return sourcesNames[s]
}

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonsNames) {
		return "Buttons(?)"
	}
	return buttonsNames[b]
}
