// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides error handling helpers that log, panic on, or
// attach call-site context to errors, and re-exports the standard
// library functions so that it can be used in place of [errors].
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an error with a base error and the call sites
// that were on the stack when it was created.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an [*Error] recording the
// current call sites. It returns nil if the given error is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Base: err, Stack: callSites()}
}

// New returns a new error with the given text, wrapped via [Wrap].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped via [Wrap]. %w verbs are supported as in [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the base error string, followed by the call sites
// when [Debug] is on.
func (e *Error) Error() string {
	res := e.Base.Error()
	if Debug && len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
