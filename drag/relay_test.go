// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"fmt"
	"testing"

	"cogentcore.org/dock/events"
	"cogentcore.org/dock/manip"
	"github.com/stretchr/testify/assert"
)

// spy records the notifications of one drop target.
type spy struct {
	name string
	log  *[]string
}

func (s spy) DragEnter(ev *DragEvent)  { *s.log = append(*s.log, "enter "+s.name) }
func (s spy) DragUpdate(ev *DragEvent) { *s.log = append(*s.log, "update "+s.name) }
func (s spy) DragLeave(ev *DragEvent)  { *s.log = append(*s.log, "leave "+s.name) }
func (s spy) Drop(ev *DragEvent) {
	*s.log = append(*s.log, fmt.Sprintf("drop %s %v", s.name, ev.Payload))
}

// bands hit tests horizontal bands of 100 pixels: x < 100 is "a1",
// x < 200 is "b1", anything further is "void".
func bands(pos events.Vec2) ElementID {
	switch {
	case pos.X < 0:
		return ""
	case pos.X < 100:
		return "a1"
	case pos.X < 200:
		return "b1"
	}
	return "void"
}

func TestProbe(t *testing.T) {
	var log []string
	r := NewRelay(bands)
	r.SetParent("a1", "a")
	r.SetParent("a", "root")
	r.Register("a", []string{"tab"}, spy{"a", &log})
	r.Register("root", []string{"tab", "file"}, spy{"root", &log})

	ev := &DragEvent{PayloadType: "tab"}
	assert.Equal(t, ElementID("a"), r.Probe("a1", ev))
	assert.Equal(t, ElementID("a"), ev.DropTarget)

	ev = &DragEvent{PayloadType: "file"}
	assert.Equal(t, ElementID("root"), r.Probe("a1", ev))

	ev = &DragEvent{PayloadType: "image"}
	assert.Equal(t, ElementID(""), r.Probe("a1", ev))
	assert.Equal(t, ElementID(""), ev.DropTarget)

	r.SetParent("root", "a1")
	assert.Equal(t, ElementID(""), r.Probe("a1", &DragEvent{PayloadType: "image"}))

	r.SetParent("root", "")
	r.Unregister("a")
	assert.Equal(t, ElementID("root"), r.Probe("a1", &DragEvent{PayloadType: "tab"}))
	r.RemoveElement("a1")
	assert.Equal(t, ElementID(""), r.Parent("a1"))
}

func TestSourceDropSequence(t *testing.T) {
	var log []string
	r := NewRelay(bands)
	r.SetParent("a1", "a")
	r.SetParent("b1", "b")
	r.Register("a", []string{"tab"}, spy{"a", &log})
	r.Register("b", []string{"tab"}, spy{"b", &log})

	s := NewSource(r, "tab", "pane-1")
	ended := false
	s.OnDragEnd = func(ev *DragEvent) { ended = true }
	tg := &manip.Target{Handler: s}

	tg.ContactDown(raw(1, 10, 0, true))
	tg.ContactMove(raw(1, 20, 0, true))
	assert.Equal(t, ElementID("a"), s.DropTarget())
	tg.ContactMove(raw(1, 30, 0, true))
	tg.ContactMove(raw(1, 150, 0, true))
	tg.ContactMove(raw(1, 250, 0, true))
	assert.Equal(t, ElementID(""), s.DropTarget())
	tg.ContactMove(raw(1, 160, 0, true))
	tg.ContactUp(raw(1, 160, 0, true))

	assert.Equal(t, []string{
		"enter a", "update a", "leave a", "enter b", "leave b", "enter b", "drop b pane-1",
	}, log)
	assert.True(t, ended)
	assert.Equal(t, ElementID(""), s.DropTarget())
}

func TestSourceBeginChangesPayload(t *testing.T) {
	var log []string
	r := NewRelay(bands)
	r.Register("a1", []string{"file"}, spy{"a1", &log})

	s := NewSource(r, "tab", nil)
	s.OnDragBegin = func(ev *DragEvent) {
		ev.PayloadType = "file"
		ev.Payload = "notes.txt"
	}
	tapped := false
	s.Gesture().OnTap = func(ev *events.Pointer) { tapped = true }
	tg := &manip.Target{Handler: s}

	tg.ContactDown(raw(1, 10, 0, true))
	tg.ContactUp(raw(1, 10, 0, true))
	assert.True(t, tapped)

	tg.ContactDown(raw(1, 10, 0, true))
	tg.ContactMove(raw(1, 50, 0, true))
	tg.ContactUp(raw(1, 50, 0, true))
	assert.Equal(t, []string{"enter a1", "drop a1 notes.txt"}, log)
}

func TestSourceCancelLeaves(t *testing.T) {
	var log []string
	r := NewRelay(bands)
	r.Register("a1", []string{"tab"}, DropFuncs{
		Enter:  func(ev *DragEvent) { log = append(log, "enter") },
		Leave:  func(ev *DragEvent) { log = append(log, "leave") },
		OnDrop: func(ev *DragEvent) { log = append(log, "drop") },
	})
	s := NewSource(r, "tab", nil)
	tg := &manip.Target{Handler: s}

	tg.ContactDown(raw(1, 10, 0, true))
	tg.ContactMove(raw(1, 50, 0, true))
	tg.ContactMove(raw(1, 60, 0, true))
	tg.ContactCancel(raw(1, 60, 0, true))
	assert.Equal(t, []string{"enter", "leave"}, log)
	assert.Equal(t, ElementID(""), s.DropTarget())
}
