// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "log/slog"

func logError(err error) {
	if Debug {
		slog.Error(err.Error(), "at", callSites())
		return
	}
	slog.Error(err.Error())
}

// Log logs a non-nil error at [slog.LevelError] and returns it
// unchanged, so that it can wrap a call in place:
//
//	return errors.Log(dock.Save(l, file))
func Log(err error) error {
	if err != nil {
		logError(err)
	}
	return err
}

// Log1 is [Log] for calls that also return a value, which is
// returned whether or not there was an error:
//
//	l := errors.Log1(dock.Open(file))
func Log1[T any](v T, err error) T {
	if err != nil {
		logError(err)
	}
	return v
}

// Must panics on a non-nil error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking on a non-nil error.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// TestingT is the part of *testing.T used by [Test] and [Test1].
type TestingT interface {
	Error(args ...any)
}

// Test reports a non-nil error to t and returns it.
func Test(t TestingT, err error) error {
	if err != nil {
		t.Error(err)
	}
	return err
}

// Test1 is [Test] for calls that also return a value.
func Test1[T any](t TestingT, v T, err error) T {
	Test(t, err)
	return v
}
