package completion

import (
	"context"

	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/input"
	"github.com/dshills/suggest/internal/ui"
)

// Hooks is the session state machine. Each hook runs on the editor
// goroutine after the corresponding editor event, interprets it against
// the binary session state (popup open or not), and either mutates the
// popup directly or emits a completion event.
type Hooks struct {
	ctx     context.Context
	handler *Handler
}

// NewHooks creates the session hooks bound to a request handler. The
// context bounds background work started from filter updates.
func NewHooks(ctx context.Context, handler *Handler) *Hooks {
	return &Hooks{ctx: ctx, handler: handler}
}

// PostCommand interprets an executed editor command. Outside insert
// mode nothing happens.
//
// The allow-lists exist because some commands are already handled by
// lower-level input processing; reacting to them here would
// double-cancel or double-trigger. Anything not allow-listed is treated
// conservatively as an unknown editing operation.
func (h *Hooks) PostCommand(ed *editor.Editor, comp *ui.Compositor, cmd input.Command) {
	if ed.Mode() != editor.ModeInsert {
		return
	}

	view := comp.EditorView()
	if view.Completion() != nil {
		switch cmd {
		case input.CmdDeleteWordForward, input.CmdDeleteCharForward, input.CmdCompletion:
			// Handled by the collaborator that owns the keystroke.
		case input.CmdDeleteCharBackward:
			h.updateFilter(ed, comp, 0, true)
		default:
			view.ClearCompletion(ed)
			h.handler.CancelWave()
		}
		return
	}

	switch cmd {
	case input.CmdDeleteCharBackward, input.CmdDeleteWordForward, input.CmdDeleteCharForward:
		v, _ := ed.CurrentRef()
		if v == nil {
			return
		}
		// Blocking send. The handler can itself be blocked in a
		// Dispatch round-trip to this goroutine, so the events buffer
		// must absorb everything one hook invocation can emit; each
		// hook sends at most one event.
		h.handler.events <- DeleteText{Cursor: v.Cursor()}
	case input.CmdCompletion, input.CmdInsertMode, input.CmdAppendMode:
		// Special-cased elsewhere; must not be canceled.
	default:
		h.handler.events <- Cancel{}
	}
}

// OnModeSwitch reacts to mode changes: leaving insert mode cancels and
// closes unconditionally, entering insert mode re-evaluates triggers.
func (h *Hooks) OnModeSwitch(ed *editor.Editor, comp *ui.Compositor, oldMode, newMode editor.Mode) {
	if oldMode == editor.ModeInsert {
		h.handler.events <- Cancel{}
		comp.EditorView().ClearCompletion(ed)
	} else if newMode == editor.ModeInsert {
		TriggerAutoCompletion(h.handler.events, ed, false)
	}
}

// PostInsertChar reacts to a character insertion: with a session open
// the filter narrows, otherwise triggers are re-evaluated.
func (h *Hooks) PostInsertChar(ed *editor.Editor, comp *ui.Compositor, c rune) {
	if comp.EditorView().Completion() != nil {
		h.updateFilter(ed, comp, c, false)
	} else {
		TriggerAutoCompletion(h.handler.events, ed, false)
	}
}

// updateFilter applies one filter change to the open popup. When the
// change closes the session, the trigger evaluator runs again right
// away: a session-closing edit may immediately justify a new session,
// e.g. typing a trigger character right after a completion closed.
func (h *Hooks) updateFilter(ed *editor.Editor, comp *ui.Compositor, c rune, remove bool) {
	view := comp.EditorView()
	menu := view.Completion()
	if menu == nil {
		return
	}

	invalidated := false
	if remove {
		invalidated = !menu.ShrinkFilter()
	} else {
		menu.ExtendFilter(c)
	}

	if invalidated || menu.IsEmpty() || (!remove && !buffer.IsWordRune(c)) {
		view.ClearCompletion(ed)
		TriggerAutoCompletion(h.handler.events, ed, false)
		return
	}

	handle := menu.IncompleteListController().Restart()
	h.handler.RequestIncompleteList(h.ctx, ed, menu, handle)
}
