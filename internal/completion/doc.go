// Package completion orchestrates asynchronous completion requests for
// the editor.
//
// It decides when a completion-worthy event should fire (trigger
// evaluation), interprets editor commands while a popup session is
// active (session hooks), races concurrent provider requests and drains
// them in arrival order (response collection), and re-validates every
// response against current editor state before touching the popup
// (staleness guarding and reconciliation).
//
// Three timelines meet here: keystrokes on the editor goroutine,
// provider responses arriving out of order on background goroutines,
// and UI state that can be invalidated at any moment. Every race is
// made explicit: background work holds only an immutable Trigger
// snapshot and a generation-stamped task.Handle, and results flow back
// exclusively through the dispatch queue, re-validated at the single
// point they are applied.
package completion
