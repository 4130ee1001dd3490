package editor

import (
	"routeboard/internal/core/domain/model/sequence"
)

// State tells whether a session holds unsaved local changes.
type State int

const (
	Clean State = iota
	Dirty
)

func (s State) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "clean"
}

// ChangeSource names what made a session Dirty.
type ChangeSource uint8

const (
	// SourceDrag is set by a drag move.
	SourceDrag ChangeSource = 1 << iota
	// SourceAssignment is set while typed ranks are pending in numeric mode.
	SourceAssignment
	// SourceResolve is set by a resolve that changed the board.
	SourceResolve
)

// ChangeTracker gates whether a refreshed list may replace the board.
// The tracker is Dirty while any change source is set. It keeps only the most
// recent refresh pushed while Dirty.
//
// ChangeTracker is not safe for concurrent use; a Session confines it to its goroutine.
type ChangeTracker struct {
	sources ChangeSource
	held    *sequence.Collection
}

func (t *ChangeTracker) State() State {
	if t.sources != 0 {
		return Dirty
	}
	return Clean
}

// Has reports whether src is among the pending sources.
func (t *ChangeTracker) Has(src ChangeSource) bool {
	return t.sources&src != 0
}

func (t *ChangeTracker) Mark(src ChangeSource) {
	t.sources |= src
}

func (t *ChangeTracker) Clear(src ChangeSource) {
	t.sources &^= src
}

// Reset clears every source. The held refresh is kept.
func (t *ChangeTracker) Reset() {
	t.sources = 0
}

// Hold replaces any previously held refresh with board.
func (t *ChangeTracker) Hold(board sequence.Collection) {
	t.held = &board
}

func (t *ChangeTracker) HasHeld() bool {
	return t.held != nil
}

// TakeHeld returns and forgets the held refresh.
func (t *ChangeTracker) TakeHeld() (sequence.Collection, bool) {
	if t.held == nil {
		return sequence.Collection{}, false
	}
	board := *t.held
	t.held = nil
	return board, true
}

func (t *ChangeTracker) DropHeld() {
	t.held = nil
}
