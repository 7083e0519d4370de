package completion

import (
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
)

// Event is a completion-worthy occurrence produced by trigger
// evaluation and the session hooks, and consumed by the request
// handler. Events are immutable values.
type Event interface {
	isEvent()
}

// TriggerChar fires when a provider-declared trigger character (or a
// path separator with path completion enabled) was just typed.
type TriggerChar struct {
	Cursor buffer.ByteOffset
	Doc    editor.DocumentID
	View   editor.ViewID
}

// AutoTrigger fires when enough consecutive word characters were typed
// with no trigger character involved.
type AutoTrigger struct {
	Cursor buffer.ByteOffset
	Doc    editor.DocumentID
	View   editor.ViewID
}

// DeleteText fires on backward deletion while no session is active.
type DeleteText struct {
	Cursor buffer.ByteOffset
}

// Cancel abandons any in-flight request or pending trigger.
type Cancel struct{}

func (TriggerChar) isEvent() {}
func (AutoTrigger) isEvent() {}
func (DeleteText) isEvent()  {}
func (Cancel) isEvent()      {}
