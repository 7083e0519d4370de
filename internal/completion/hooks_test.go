package completion

import (
	"context"
	"testing"

	"github.com/dshills/suggest/internal/completion/item"
	"github.com/dshills/suggest/internal/config"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/input"
	"github.com/dshills/suggest/internal/ui"
)

func newTestHooks(t *testing.T) (*Hooks, *Handler) {
	t.Helper()
	h := newTestHandler(t)
	return NewHooks(context.Background(), h), h
}

func receivedEvent(t *testing.T, h *Handler) (Event, bool) {
	t.Helper()
	select {
	case ev := <-h.events:
		return ev, true
	default:
		return nil, false
	}
}

func TestPostCommandOutsideInsertMode(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, _, _ := insertEditor(t, config.Default(), "hello")
	ed.SetMode(editor.ModeNormal)
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})

	hooks.PostCommand(ed, comp, input.CmdDeleteCharBackward)
	hooks.PostCommand(ed, comp, input.CmdOther)

	if ev, ok := receivedEvent(t, h); ok {
		t.Fatalf("command outside insert mode emitted %T", ev)
	}
}

func TestPostCommandSessionAllowList(t *testing.T) {
	for _, cmd := range []input.Command{
		input.CmdDeleteWordForward, input.CmdDeleteCharForward, input.CmdCompletion,
	} {
		t.Run(cmd.String(), func(t *testing.T) {
			hooks, h := newTestHooks(t)
			ed, view, doc := insertEditor(t, config.Default(), "pri")
			comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
			menu := openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print").Items)

			hooks.PostCommand(ed, comp, cmd)

			if comp.EditorView().Completion() != menu {
				t.Fatal("allow-listed command must leave the session open")
			}
			if ev, ok := receivedEvent(t, h); ok {
				t.Fatalf("allow-listed command emitted %T", ev)
			}
		})
	}
}

func TestPostCommandSessionUnknownCloses(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "pri")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print").Items)

	handle := h.controller.Restart()
	hooks.PostCommand(ed, comp, input.CmdOther)

	if comp.EditorView().Completion() != nil {
		t.Fatal("unknown command must close the session")
	}
	if !handle.IsCanceled() {
		t.Fatal("unknown command must supersede the request wave")
	}
}

func TestPostCommandBackspaceShrinksFilter(t *testing.T) {
	hooks, _ := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "prin")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	menu := openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print", "println").Items)
	menu.ExtendFilter('n')

	hooks.PostCommand(ed, comp, input.CmdDeleteCharBackward)

	if comp.EditorView().Completion() != menu {
		t.Fatal("backspace with filter characters left must keep the session")
	}
	if got := menu.Filter(); got != "" {
		t.Fatalf("filter = %q after backspace, want empty", got)
	}
}

func TestPostCommandBackspacePastSessionStartCloses(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "hello")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "hello_world").Items)

	// No filter characters accumulated; deleting crosses the session
	// start and invalidates it.
	hooks.PostCommand(ed, comp, input.CmdDeleteCharBackward)

	if comp.EditorView().Completion() != nil {
		t.Fatal("backspace past the session start must close the session")
	}
	// The editor state still satisfies the word heuristic, so the
	// evaluator fires again immediately.
	if ev, ok := receivedEvent(t, h); !ok {
		t.Fatal("closing by backspace should re-run trigger evaluation")
	} else if _, isAuto := ev.(AutoTrigger); !isAuto {
		t.Fatalf("re-trigger emitted %T, want AutoTrigger", ev)
	}
}

func TestPostCommandNoSessionDeleteEmitsDeleteText(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, view, _ := insertEditor(t, config.Default(), "hello")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})

	hooks.PostCommand(ed, comp, input.CmdDeleteCharBackward)

	ev, ok := receivedEvent(t, h)
	if !ok {
		t.Fatal("delete without a session must emit DeleteText")
	}
	del, isDel := ev.(DeleteText)
	if !isDel {
		t.Fatalf("emitted %T, want DeleteText", ev)
	}
	if del.Cursor != view.Cursor() {
		t.Fatalf("DeleteText.Cursor = %d, want %d", del.Cursor, view.Cursor())
	}
}

func TestPostCommandNoSessionAllowList(t *testing.T) {
	for _, cmd := range []input.Command{
		input.CmdCompletion, input.CmdInsertMode, input.CmdAppendMode,
	} {
		t.Run(cmd.String(), func(t *testing.T) {
			hooks, h := newTestHooks(t)
			ed, _, _ := insertEditor(t, config.Default(), "hello")
			comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})

			hooks.PostCommand(ed, comp, cmd)
			if ev, ok := receivedEvent(t, h); ok {
				t.Fatalf("allow-listed command emitted %T", ev)
			}
		})
	}
}

func TestPostCommandNoSessionUnknownEmitsCancel(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, _, _ := insertEditor(t, config.Default(), "hello")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})

	hooks.PostCommand(ed, comp, input.CmdOther)

	ev, ok := receivedEvent(t, h)
	if !ok {
		t.Fatal("unknown command must emit Cancel")
	}
	if _, isCancel := ev.(Cancel); !isCancel {
		t.Fatalf("emitted %T, want Cancel", ev)
	}
}

func TestOnModeSwitchLeavingInsert(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "pri")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print").Items)

	hooks.OnModeSwitch(ed, comp, editor.ModeInsert, editor.ModeNormal)

	if comp.EditorView().Completion() != nil {
		t.Fatal("leaving insert mode must close the session")
	}
	ev, ok := receivedEvent(t, h)
	if !ok {
		t.Fatal("leaving insert mode must emit Cancel")
	}
	if _, isCancel := ev.(Cancel); !isCancel {
		t.Fatalf("emitted %T, want Cancel", ev)
	}
}

func TestOnModeSwitchEnteringInsert(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, _, _ := insertEditor(t, config.Default(), "hello")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})

	hooks.OnModeSwitch(ed, comp, editor.ModeNormal, editor.ModeInsert)

	ev, ok := receivedEvent(t, h)
	if !ok {
		t.Fatal("entering insert mode should re-run trigger evaluation")
	}
	if _, isAuto := ev.(AutoTrigger); !isAuto {
		t.Fatalf("emitted %T, want AutoTrigger", ev)
	}
}

func TestPostInsertCharWithoutSessionTriggers(t *testing.T) {
	hooks, h := newTestHooks(t)
	ed, _, _ := insertEditor(t, config.Default(), "hel")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})

	hooks.PostInsertChar(ed, comp, 'l')

	if _, ok := receivedEvent(t, h); !ok {
		t.Fatal("typing without a session should re-run trigger evaluation")
	}
}

func TestPostInsertCharNarrowsFilter(t *testing.T) {
	hooks, _ := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "prin")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	menu := openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print", "parse").Items)

	hooks.PostInsertChar(ed, comp, 'n')

	if comp.EditorView().Completion() != menu {
		t.Fatal("narrowing must keep the session open")
	}
	if got := menu.Filter(); got != "n" {
		t.Fatalf("filter = %q, want %q", got, "n")
	}
	if got := len(menu.Filtered()); got != 1 {
		t.Fatalf("%d candidates after narrowing, want 1", got)
	}
}

func TestPostInsertCharNonWordRuneCloses(t *testing.T) {
	hooks, _ := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "print(")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print(").Items)

	hooks.PostInsertChar(ed, comp, '(')

	if comp.EditorView().Completion() != nil {
		t.Fatal("a non-word character must close the session")
	}
}

func TestPostInsertCharNoMatchCloses(t *testing.T) {
	hooks, _ := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "priz")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print", "println").Items)

	hooks.PostInsertChar(ed, comp, 'z')

	if comp.EditorView().Completion() != nil {
		t.Fatal("an empty candidate list must close the session")
	}
}

func TestPostInsertCharSupersedesIncompleteWave(t *testing.T) {
	hooks, _ := newTestHooks(t)
	ed, view, doc := insertEditor(t, config.Default(), "prin")
	comp := ui.NewCompositor(ui.Rect{W: 80, H: 24})
	menu := openPopup(ed, comp, view, doc, labeled(item.LSPProvider("a"), "print").Items)

	stale := menu.IncompleteListController().Restart()
	hooks.PostInsertChar(ed, comp, 'n')

	if !stale.IsCanceled() {
		t.Fatal("each filter change must supersede the previous incomplete re-query")
	}
}
