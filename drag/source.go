// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import "cogentcore.org/dock/events"

// Source is an [events.Handler] that drags a typed payload. While
// dragging it hit tests the pointer position on every move; when the
// element under the pointer changes it probes the [Relay] for a new
// drop target and sends leave and enter notifications as the drop
// target changes, or an update to an unchanged drop target. On release
// it drops the payload on the drop target, if there is one.
type Source struct {
	Relay *Relay

	PayloadType string
	Payload     any

	// OnDragBegin may change PayloadType and Payload of the event,
	// which are then used for the rest of the drag.
	OnDragBegin func(ev *DragEvent)
	OnDragMove  func(ev *DragEvent, delta events.Vec2)
	OnDragEnd   func(ev *DragEvent)

	gesture    Draggable
	dragTarget ElementID
	dropTarget ElementID
}

// NewSource returns a new drag source for the given payload.
func NewSource(relay *Relay, payloadType string, payload any) *Source {
	s := &Source{Relay: relay, PayloadType: payloadType, Payload: payload}
	s.gesture.OnDragBegin = s.dragBegin
	s.gesture.OnDragMove = s.dragMove
	s.gesture.OnDragEnd = s.dragEnd
	return s
}

// Gesture returns the underlying gesture, for setting the press,
// release, tap, double tap, and context menu callbacks.
func (s *Source) Gesture() *Draggable {
	return &s.gesture
}

// DropTarget returns the current drop target, or "".
func (s *Source) DropTarget() ElementID {
	return s.dropTarget
}

func (s *Source) OnPointer(ev *events.Pointer) bool {
	return s.gesture.OnPointer(ev)
}

func (s *Source) OnTrigger(ev *events.Trigger) bool {
	return s.gesture.OnTrigger(ev)
}

func (s *Source) event(pe *events.Pointer) *DragEvent {
	return &DragEvent{Pointer: pe, PayloadType: s.PayloadType, Payload: s.Payload, DropTarget: s.dropTarget, Source: s}
}

func (s *Source) dragBegin(pe *events.Pointer) {
	s.dragTarget = ""
	s.dropTarget = ""
	if s.OnDragBegin != nil {
		ev := s.event(pe)
		s.OnDragBegin(ev)
		s.PayloadType = ev.PayloadType
		s.Payload = ev.Payload
	}
}

func (s *Source) dragMove(pe *events.Pointer, delta events.Vec2) {
	s.updateDropTarget(pe)
	if s.OnDragMove != nil {
		s.OnDragMove(s.event(pe), delta)
	}
}

func (s *Source) updateDropTarget(pe *events.Pointer) {
	if s.Relay == nil {
		return
	}
	changed := false
	var el ElementID
	if s.Relay.HitTest != nil {
		el = s.Relay.HitTest(pe.Pos)
	}
	if el != s.dragTarget {
		s.dragTarget = el
		var target ElementID
		if el != "" {
			probe := s.event(pe)
			probe.DropTarget = ""
			target = s.Relay.Probe(el, probe)
		}
		if target != s.dropTarget {
			changed = true
			if s.dropTarget != "" {
				s.Relay.leave(s.dropTarget, s.event(pe))
			}
			s.dropTarget = target
			if target != "" {
				s.Relay.enter(target, s.event(pe))
			}
		}
	}
	if !changed && s.dropTarget != "" {
		s.Relay.update(s.dropTarget, s.event(pe))
	}
}

// dragEnd drops on the current drop target, or sends it a leave if
// the gesture was cancelled. References are cleared in both cases.
func (s *Source) dragEnd(pe *events.Pointer) {
	if s.dropTarget != "" && s.Relay != nil {
		if pe.Cancelled {
			s.Relay.leave(s.dropTarget, s.event(pe))
		} else {
			s.Relay.drop(s.dropTarget, s.event(pe))
		}
	}
	if s.OnDragEnd != nil {
		s.OnDragEnd(s.event(pe))
	}
	s.dragTarget = ""
	s.dropTarget = ""
}
