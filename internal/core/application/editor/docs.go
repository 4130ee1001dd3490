// Package editor implements interactive editing sessions for a day board.
//
// A Session owns one board and serializes every command through a single
// goroutine, so drag moves, numeric rank entry, background refreshes and save
// confirmations never interleave. Two interaction modes rearrange the board:
//
//   - drag: BeginDrag, then Overlap or DragPointer one step at a time, then EndDrag
//   - numeric: EnterNumericMode, Assign ranks as text, then Resolve or CancelNumericMode
//
// Any accepted rearrangement makes the session Dirty. While Dirty, refreshed lists
// pushed by the background poll are held instead of applied, so an unsaved
// arrangement is never overwritten. Save hands a snapshot to a ports.SequenceGateway
// in the background; a successful confirmation makes the session Clean again unless
// the board changed in the meantime.
//
// Registry keeps the open sessions and closes idle ones.
package editor
