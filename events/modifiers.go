// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Modifiers are the modifier keys held during an event.
type Modifiers int64 //enums:bitflag

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// HasFlag returns whether all of the given modifiers are set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f == f
}

// HasAny returns whether any of the given modifiers are set.
func (m Modifiers) HasAny(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets or clears the given modifiers.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

// String returns the modifiers joined by "+", e.g. "Shift+Alt".
func (m Modifiers) String() string {
	var parts []string
	for i, nm := range []string{"Shift", "Control", "Alt", "Meta"} {
		if m.HasFlag(1 << i) {
			parts = append(parts, nm)
		}
	}
	return strings.Join(parts, "+")
}
