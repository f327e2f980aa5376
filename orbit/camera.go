// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "github.com/chewxy/math32"

var (
	// OrbitFactor is degrees of heading or pitch per pixel.
	OrbitFactor = float32(0.25)

	// PanFactor is target offset per pixel, per unit of distance.
	PanFactor = float32(0.001)
)

// Camera is an orbiting camera looking at a target, with the
// orientation in degrees. It integrates [DeltaPose] values.
type Camera struct {
	Head, Pitch, Roll float32

	// Distance from the target, clamped to [MinDistance, MaxDistance].
	Distance float32

	// OffsetX, OffsetY is the target position in the view plane.
	OffsetX, OffsetY float32

	MinDistance float32
	MaxDistance float32
}

// Defaults sets default values.
func (c *Camera) Defaults() {
	c.Distance = 10
	c.MinDistance = 0.1
	c.MaxDistance = 1000
}

// Apply integrates the given motion; nil is a no-op.
// Pitch is clamped to [-90, 90] and heading wraps to [0, 360).
func (c *Camera) Apply(d *DeltaPose) {
	if d == nil {
		return
	}
	c.Head = math32.Mod(c.Head-d.Head*OrbitFactor, 360)
	if c.Head < 0 {
		c.Head += 360
	}
	c.Pitch = min(max(c.Pitch-d.Pitch*OrbitFactor, -90), 90)
	c.Roll += d.Roll * OrbitFactor
	pan := PanFactor * max(c.Distance, 1)
	c.OffsetX -= d.X * pan
	c.OffsetY += d.Y * pan
	if d.Scale > 0 {
		c.Distance *= d.Scale
	}
	if c.MaxDistance > 0 {
		c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
	}
}
