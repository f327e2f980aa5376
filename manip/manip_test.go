// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manip

import (
	"testing"

	"cogentcore.org/dock/events"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	pointers []*events.Pointer
	triggers []*events.Trigger
	consume  bool
}

func (r *recorder) OnPointer(ev *events.Pointer) bool {
	r.pointers = append(r.pointers, ev)
	return r.consume
}

func (r *recorder) OnTrigger(ev *events.Trigger) bool {
	r.triggers = append(r.triggers, ev)
	return r.consume
}

func (r *recorder) last() *events.Pointer {
	return r.pointers[len(r.pointers)-1]
}

type capturer struct {
	held map[int]bool
}

func (c *capturer) Capture(id int) { c.held[id] = true }
func (c *capturer) Release(id int) { delete(c.held, id) }

func touch(id int, x, y float32, primary bool) events.Raw {
	return events.Raw{Contact: events.Contact{ID: id, Pos: events.Vec2{X: x, Y: y}}, Source: events.Touch, Primary: primary}
}

func mouse(x, y float32) events.Raw {
	return events.Raw{Contact: events.Contact{ID: 1, Pos: events.Vec2{X: x, Y: y}}, Source: events.Mouse, Button: events.Left, Primary: true}
}

func TestCentroid(t *testing.T) {
	r := &recorder{}
	tg := &Target{Handler: r}

	tg.ContactDown(touch(1, 0, 0, true))
	tg.ContactDown(touch(2, 10, 0, false))
	tg.ContactDown(touch(3, 20, 30, false))
	ev := r.last()
	assert.Equal(t, events.PointerDown, ev.Type)
	assert.Equal(t, 3, ev.Count)
	assert.Len(t, ev.Positions, 3)
	assert.Equal(t, events.Vec2{X: 10, Y: 10}, ev.Center)
	assert.Equal(t, events.Vec2{}, ev.Movement)

	tg.ContactMove(touch(3, 50, 30, false))
	ev = r.last()
	assert.Equal(t, events.Vec2{X: 20, Y: 10}, ev.Center)
	assert.Equal(t, events.Vec2{X: 10, Y: 0}, ev.Movement)

	tg.ContactUp(touch(3, 50, 30, false))
	ev = r.last()
	assert.Equal(t, events.PointerUp, ev.Type)
	assert.Equal(t, 2, ev.Count)
	assert.Equal(t, events.Vec2{X: 5, Y: 0}, ev.Center)
	assert.Equal(t, events.Vec2{}, ev.Movement)

	tg.ContactUp(touch(1, 0, 0, true))
	tg.ContactUp(touch(2, 10, 0, false))
	ev = r.last()
	assert.Equal(t, 0, ev.Count)
	// no contacts left: the last centroid is retained
	assert.Equal(t, events.Vec2{X: 10, Y: 0}, ev.Center)
	assert.False(t, math32.IsNaN(ev.Center.X))
	assert.Equal(t, events.NoSource, tg.Source())
}

func TestMovementIsDelta(t *testing.T) {
	r := &recorder{}
	tg := &Target{Handler: r}

	tg.ContactDown(mouse(5, 5))
	path := [][2]float32{{7, 6}, {12, 3}, {11, 20}, {40, 41}}
	for _, p := range path {
		tg.ContactMove(mouse(p[0], p[1]))
	}
	tg.ContactUp(mouse(40, 41))

	var sum events.Vec2
	for _, ev := range r.pointers {
		sum = sum.Add(ev.Movement)
	}
	assert.Equal(t, events.Vec2{X: 35, Y: 36}, sum)
	assert.Equal(t, events.Vec2{}, r.pointers[0].Movement)
	assert.Equal(t, events.Vec2{}, r.last().Movement)
}

func TestSourceLock(t *testing.T) {
	r := &recorder{}
	tg := &Target{Handler: r}

	tg.ContactDown(touch(1, 0, 0, true))
	assert.False(t, tg.ContactDown(mouse(3, 3)))
	assert.Len(t, r.pointers, 1)
	assert.Len(t, tg.Contacts(), 1)

	tg.ContactUp(touch(1, 0, 0, true))
	tg.ContactDown(mouse(3, 3))
	assert.Equal(t, events.Mouse, tg.Source())
	assert.Len(t, r.pointers, 3)
}

func TestOrphanAndHover(t *testing.T) {
	r := &recorder{consume: true}
	tg := &Target{Handler: r}

	assert.False(t, tg.ContactUp(mouse(1, 1)))
	assert.False(t, tg.ContactCancel(mouse(1, 1)))
	assert.False(t, tg.ContactMove(mouse(2, 2)))
	assert.Empty(t, r.pointers)
}

func TestCancelAndCapture(t *testing.T) {
	r := &recorder{}
	c := &capturer{held: map[int]bool{}}
	tg := &Target{Handler: r, Capture: true, Capturer: c}

	tg.ContactDown(touch(4, 1, 1, true))
	tg.ContactDown(touch(5, 2, 2, false))
	assert.Len(t, c.held, 2)

	tg.ContactCancel(touch(4, 1, 1, true))
	assert.True(t, r.last().Cancelled)
	assert.Equal(t, map[int]bool{5: true}, c.held)

	tg.Reset()
	assert.Empty(t, c.held)
	assert.Empty(t, tg.Contacts())
	assert.Equal(t, events.NoSource, tg.Source())
}

func TestPinch(t *testing.T) {
	r := &recorder{}
	tg := &Target{Handler: r}

	tg.ContactDown(touch(1, 0, 0, true))
	assert.Equal(t, float32(1), r.last().Pinch.Factor)
	tg.ContactDown(touch(2, 10, 0, false))
	p := r.last().Pinch
	assert.Equal(t, float32(10), p.Distance)
	assert.Equal(t, float32(1), p.Factor)

	tg.ContactMove(touch(2, 20, 0, false))
	p = r.last().Pinch
	assert.Equal(t, float32(20), p.Distance)
	assert.Equal(t, float32(2), p.Factor)
	assert.Equal(t, float32(2), p.DeltaFactor)

	tg.ContactMove(touch(2, 0, 20, false))
	p = r.last().Pinch
	assert.Equal(t, float32(1), p.DeltaFactor)
	assert.InDelta(t, math32.Pi/2, p.DeltaAngle, 1e-5)
}

func TestTriggers(t *testing.T) {
	r := &recorder{}
	tg := &Target{Handler: r}

	assert.False(t, tg.Wheel(events.Vec2{}, 3, 0))
	assert.False(t, tg.DoubleClick(events.Vec2{}, 0))
	assert.True(t, tg.ContextMenu(events.Vec2{}, events.Shift))
	require.Len(t, r.triggers, 3)
	assert.Equal(t, float32(3), r.triggers[0].Wheel)
	assert.Equal(t, events.ContextMenu, r.triggers[2].Type)

	r.consume = true
	assert.True(t, tg.Wheel(events.Vec2{}, -1, 0))
	assert.True(t, tg.DoubleClick(events.Vec2{}, 0))
}

func TestHandlerBeatsFuncs(t *testing.T) {
	r := &recorder{}
	funcCalls := 0
	tg := &Target{Handler: r, Funcs: events.Funcs{
		Pointer: func(ev *events.Pointer) bool { funcCalls++; return true },
	}}
	tg.ContactDown(mouse(0, 0))
	assert.Len(t, r.pointers, 1)
	assert.Equal(t, 0, funcCalls)

	tg.Handler = nil
	assert.True(t, tg.ContactMove(mouse(1, 0)))
	assert.Equal(t, 1, funcCalls)
}

func TestDeltaRadians(t *testing.T) {
	assert.InDelta(t, 0.2, deltaRadians(math32.Pi-0.1, -math32.Pi+0.1), 1e-5)
	assert.InDelta(t, -0.2, deltaRadians(-math32.Pi+0.1, math32.Pi-0.1), 1e-5)
}
