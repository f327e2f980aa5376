// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Handler receives semantic events. Each method returns whether
// the event was consumed.
type Handler interface {
	OnPointer(ev *Pointer) bool
	OnTrigger(ev *Trigger) bool
}

// Funcs are two independent callbacks that can be used instead
// of a [Handler]. Either may be nil.
type Funcs struct {
	Pointer func(ev *Pointer) bool
	Trigger func(ev *Trigger) bool
}

func (f Funcs) OnPointer(ev *Pointer) bool {
	if f.Pointer == nil {
		return false
	}
	return f.Pointer(ev)
}

func (f Funcs) OnTrigger(ev *Trigger) bool {
	if f.Trigger == nil {
		return false
	}
	return f.Trigger(ev)
}

// Resolve returns the handler that receives events when both
// a handler object and callbacks may be configured: the handler
// object always takes priority, so exactly one of them is used.
func Resolve(h Handler, f Funcs) Handler {
	if h != nil {
		return h
	}
	return &f
}
