// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import "cogentcore.org/dock/events"

// Rect is a rectangle in window coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Contains returns whether the point is inside the rectangle.
func (r Rect) Contains(pos events.Vec2) bool {
	return pos.X >= r.X && pos.X < r.X+r.Width && pos.Y >= r.Y && pos.Y < r.Y+r.Height
}

// AreaAt returns the location at which a pane dropped at the given
// position onto a stack occupying the given rectangle is docked.
// The middle third of the rectangle is [Center], and the rest is
// divided along the diagonals into the four edges. Positions outside
// the rectangle are [None].
func AreaAt(r Rect, pos events.Vec2) Locations {
	if r.Width <= 0 || r.Height <= 0 || !r.Contains(pos) {
		return None
	}
	x := (pos.X - r.X) / r.Width
	y := (pos.Y - r.Y) / r.Height
	switch {
	case x > 0.33 && x < 0.67 && y > 0.33 && y < 0.67:
		return Center
	case x < y:
		if x+y < 1 {
			return Left
		}
		return Bottom
	default:
		if x+y < 1 {
			return Top
		}
		return Right
	}
}

// Highlight returns the part of the rectangle that a pane dropped
// at the given location would occupy, for drawing a drop indicator.
// It returns a zero rectangle for [None].
func Highlight(r Rect, loc Locations) Rect {
	switch loc {
	case None:
		return Rect{}
	case Left:
		r.Width /= 2
	case Right:
		r.Width /= 2
		r.X += r.Width
	case Top:
		r.Height /= 2
	case Bottom:
		r.Height /= 2
		r.Y += r.Height
	}
	return r
}
