// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Debug is whether to include call sites in error strings.
var Debug = false

// callSites returns "file:line" entries for the callers of the
// function that called [Wrap], stopping at runtime and testing frames.
func callSites() []string {
	callers := make([]uintptr, 10)
	n := runtime.Callers(3, callers)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(callers[:n])
	var res []string
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		res = append(res, filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return res
}
