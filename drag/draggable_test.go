// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"testing"

	"cogentcore.org/dock/events"
	"cogentcore.org/dock/manip"
	"github.com/stretchr/testify/assert"
)

// newLogged returns a draggable that appends the name of every
// callback to the returned log.
func newLogged() (*Draggable, *[]string, *[]events.Vec2) {
	var log []string
	var deltas []events.Vec2
	d := &Draggable{
		OnPress:       func(ev *events.Pointer) { log = append(log, "press") },
		OnRelease:     func(ev *events.Pointer) { log = append(log, "release") },
		OnTap:         func(ev *events.Pointer) { log = append(log, "tap") },
		OnDoubleTap:   func(ev *events.Trigger) { log = append(log, "double-tap") },
		OnDragBegin:   func(ev *events.Pointer) { log = append(log, "drag-begin") },
		OnDragEnd:     func(ev *events.Pointer) { log = append(log, "drag-end") },
		OnContextMenu: func(ev *events.Trigger) { log = append(log, "context-menu") },
		OnDragMove: func(ev *events.Pointer, delta events.Vec2) {
			log = append(log, "drag-move")
			deltas = append(deltas, delta)
		},
	}
	return d, &log, &deltas
}

func raw(id int, x, y float32, primary bool) events.Raw {
	return events.Raw{Contact: events.Contact{ID: id, Pos: events.Vec2{X: x, Y: y}}, Source: events.Touch, Primary: primary}
}

func TestTapBelowThreshold(t *testing.T) {
	d, log, _ := newLogged()
	tg := &manip.Target{Handler: d}

	tg.ContactDown(raw(1, 10, 10, true))
	assert.Equal(t, Pressed, d.State())
	tg.ContactMove(raw(1, 11, 10, true))
	tg.ContactMove(raw(1, 11, 11, true))
	tg.ContactUp(raw(1, 11, 11, true))

	assert.Equal(t, []string{"press", "release", "tap"}, *log)
	assert.Equal(t, Idle, d.State())
}

func TestDragAboveThreshold(t *testing.T) {
	d, log, deltas := newLogged()
	tg := &manip.Target{Handler: d}

	tg.ContactDown(raw(1, 10, 10, true))
	tg.ContactMove(raw(1, 12, 10, true))
	assert.Equal(t, Pressed, d.State())
	tg.ContactMove(raw(1, 12, 11, true))
	assert.True(t, d.IsDragging())
	tg.ContactMove(raw(1, 20, 15, true))
	tg.ContactUp(raw(1, 20, 15, true))

	assert.Equal(t, []string{"press", "drag-begin", "drag-move", "drag-move", "drag-end", "release"}, *log)
	assert.Equal(t, []events.Vec2{{X: 0, Y: 1}, {X: 8, Y: 4}}, *deltas)
}

func TestSecondaryContactsIgnored(t *testing.T) {
	d, log, _ := newLogged()
	tg := &manip.Target{Handler: d}

	tg.ContactDown(raw(1, 0, 0, true))
	tg.ContactDown(raw(2, 50, 50, false))
	tg.ContactMove(raw(2, 90, 90, false))
	tg.ContactUp(raw(2, 90, 90, false))
	assert.Equal(t, Pressed, d.State())
	tg.ContactUp(raw(1, 0, 0, true))
	assert.Equal(t, []string{"press", "release", "tap"}, *log)
}

func TestTriggersSuppressedWhileDragging(t *testing.T) {
	d, log, _ := newLogged()
	tg := &manip.Target{Handler: d}

	tg.DoubleClick(events.Vec2{}, 0)
	tg.ContactDown(raw(1, 0, 0, true))
	tg.ContactMove(raw(1, 10, 0, true))
	tg.DoubleClick(events.Vec2{}, 0)
	assert.True(t, tg.ContextMenu(events.Vec2{}, 0))
	tg.ContactUp(raw(1, 10, 0, true))
	tg.ContextMenu(events.Vec2{}, 0)

	assert.Equal(t, []string{"double-tap", "press", "drag-begin", "drag-move", "drag-end", "release", "context-menu"}, *log)
}

func TestCancel(t *testing.T) {
	d, log, _ := newLogged()
	tg := &manip.Target{Handler: d}

	tg.ContactDown(raw(1, 0, 0, true))
	tg.ContactCancel(raw(1, 0, 0, true))
	assert.True(t, d.Cancelled())
	assert.Equal(t, Idle, d.State())
	assert.Equal(t, []string{"press", "release"}, *log)

	*log = nil
	tg.ContactDown(raw(1, 0, 0, true))
	assert.False(t, d.Cancelled())
	tg.ContactMove(raw(1, 5, 5, true))
	tg.ContactCancel(raw(1, 5, 5, true))
	assert.Equal(t, []string{"press", "drag-begin", "drag-move", "drag-end", "release"}, *log)
	assert.Equal(t, Idle, d.State())
}

func TestDisabled(t *testing.T) {
	d, log, _ := newLogged()
	d.Disabled = true
	tg := &manip.Target{Handler: d}

	tg.ContactDown(raw(1, 0, 0, true))
	tg.ContactMove(raw(1, 50, 50, true))
	tg.ContactUp(raw(1, 50, 50, true))
	assert.Equal(t, []string{"press", "release", "tap"}, *log)
}
