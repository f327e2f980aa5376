// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

// SplitterMargin is the minimum size in pixels of a section
// when a splitter handle is moved.
var SplitterMargin = 20.0

// SplitterResize returns the new sizes, as fractions of the
// container, of the two sections on either side of a splitter
// handle that has been moved by delta pixels. first and second are
// the current pixel sizes of the sections, and container is the
// pixel size of the whole split. Neither section shrinks below
// margin pixels.
func SplitterResize(first, second, delta, container, margin float64) (float64, float64) {
	first += delta
	second -= delta
	if first < margin {
		second += first - margin
		first = margin
	} else if second < margin {
		first += second - margin
		second = margin
	}
	if container <= 0 {
		return 0, 0
	}
	return first / container, second / container
}

// NormalizeSizes returns the given relative section sizes scaled
// to sum to 1. Sizes that are not positive are unset: they share the
// space left over by the set sizes if that is less than 1, and
// otherwise each get the mean of the set sizes.
func NormalizeSizes(sizes []float64) []float64 {
	n := len(sizes)
	total := 0.0
	count := 0
	for _, s := range sizes {
		if s > 0 {
			total += s
			count++
		}
	}
	def := 0.0
	if count < n {
		if total < 1 {
			def = (1 - total) / float64(n-count)
		} else {
			def = total / float64(n)
		}
		total += def * float64(n-count)
	}
	res := make([]float64, n)
	if total <= 0 {
		return res
	}
	for i, s := range sizes {
		if s <= 0 {
			s = def
		}
		res[i] = s / total
	}
	return res
}

// Sizes returns the normalized sizes of the sections of the split.
func (s *Split) Sizes() []float64 {
	sizes := make([]float64, len(s.Sections))
	for i, sec := range s.Sections {
		sizes[i] = sec.LayoutSize()
	}
	return NormalizeSizes(sizes)
}
