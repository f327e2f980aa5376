// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "slices"

// Dispatcher is a [Handler] that offers events to an ordered list
// of handlers. A pointer event is offered to each handler in turn
// until one consumes it; that handler then becomes active and
// receives all pointer events exclusively until it returns false.
// Handlers are compared by identity, so they must be comparable
// (typically pointers such as *[Funcs]).
// Triggers go to the active handler if there is one, and
// otherwise to each handler in turn until one consumes it.
type Dispatcher struct {
	handlers []Handler
	active   Handler
}

// Add appends the handler to the end of the chain.
func (d *Dispatcher) Add(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Insert inserts the handler at the given index in the chain.
func (d *Dispatcher) Insert(i int, h Handler) {
	d.handlers = slices.Insert(d.handlers, i, h)
}

// Remove removes the handler from the chain. If it is the active
// handler, there is no active handler afterwards.
func (d *Dispatcher) Remove(h Handler) {
	if i := slices.Index(d.handlers, h); i >= 0 {
		d.handlers = slices.Delete(d.handlers, i, i+1)
	}
	if d.active == h {
		d.active = nil
	}
}

// Active returns the active handler, or nil.
func (d *Dispatcher) Active() Handler {
	return d.active
}

func (d *Dispatcher) OnPointer(ev *Pointer) bool {
	if d.active != nil {
		if d.active.OnPointer(ev) {
			return true
		}
		d.active = nil
		return false
	}
	for _, h := range d.handlers {
		if h.OnPointer(ev) {
			d.active = h
			return true
		}
	}
	return false
}

func (d *Dispatcher) OnTrigger(ev *Trigger) bool {
	if d.active != nil {
		return d.active.OnTrigger(ev)
	}
	for _, h := range d.handlers {
		if h.OnTrigger(ev) {
			return true
		}
	}
	return false
}
