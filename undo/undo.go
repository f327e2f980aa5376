// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a generic undo / redo stack of state snapshots.
package undo

import (
	"log/slog"
	"sync"
)

// Rec is one undo record: the state after an action.
type Rec[T any] struct {

	// Action is a description of the action, for the user to see.
	Action string

	// State is the full state after the action.
	State T
}

// Stack is the undo stack. Each record holds the state that resulted
// from its action, so undoing record i reinstates the state of record
// i-1. The first saved record is the base state and cannot be undone.
type Stack[T any] struct {

	// Index is the current record. It is the record that will be
	// undone if the user hits undo.
	Index int

	// Recs are the saved records.
	Recs []*Rec[T]

	// Max is the maximum number of records to keep, if > 0.
	// The oldest records are dropped first.
	Max int

	// Mu protects updates.
	Mu sync.Mutex
}

// Save saves a new record as the next action to be undone, with the
// state that resulted from it. Any records that could be redone are
// discarded.
func (us *Stack[T]) Save(action string, state T) {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	if us.Recs == nil {
		us.Recs = []*Rec[T]{{Action: action, State: state}}
		us.Index = 0
		return
	}
	if us.Index >= len(us.Recs) {
		slog.Error("undo.Stack: index out of range", "index", us.Index, "len", len(us.Recs))
		us.Index = len(us.Recs) - 1
	}
	us.Recs = append(us.Recs[:us.Index+1], &Rec[T]{Action: action, State: state})
	us.Index++
	if us.Max > 0 && len(us.Recs) > us.Max {
		n := len(us.Recs) - us.Max
		us.Recs = us.Recs[n:]
		us.Index -= n
	}
}

// CanUndo returns true if there is at least one record to undo.
func (us *Stack[T]) CanUndo() bool {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	return us.Index > 0
}

// CanRedo returns true if there is at least one record to redo.
func (us *Stack[T]) CanRedo() bool {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	return us.Index < len(us.Recs)-1
}

// Undo steps back one record, returning the undone action and the
// state to reinstate. ok is false if there is nothing to undo.
func (us *Stack[T]) Undo() (action string, state T, ok bool) {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	if us.Index <= 0 {
		return
	}
	action = us.Recs[us.Index].Action
	us.Index--
	return action, us.Recs[us.Index].State, true
}

// Redo steps forward one record, returning the redone action and
// the state to reinstate. ok is false if there is nothing to redo.
func (us *Stack[T]) Redo() (action string, state T, ok bool) {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	if us.Index >= len(us.Recs)-1 {
		return
	}
	us.Index++
	rec := us.Recs[us.Index]
	return rec.Action, rec.State, true
}

// Reset discards all records.
func (us *Stack[T]) Reset() {
	us.Mu.Lock()
	defer us.Mu.Unlock()
	us.Recs = nil
	us.Index = 0
}
