package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/suggest/internal/completion"
	"github.com/dshills/suggest/internal/dispatch"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/input"
	"github.com/dshills/suggest/internal/ui"
)

// runScript replays an editing session: enter insert mode, type enough
// to auto-trigger, narrow the filter, delete back, then leave insert
// mode. Each step is posted to the dispatch queue so it runs with
// exclusive access to editor state, interleaved with provider results.
func runScript(ctx context.Context, cancel context.CancelFunc, queue *dispatch.Queue, hooks *completion.Hooks, log *zap.SugaredLogger) {
	defer cancel()

	post := func(fn dispatch.Job) {
		if err := queue.Post(ctx, fn); err != nil {
			return
		}
	}
	pause := func(d time.Duration) {
		select {
		case <-time.After(d):
		case <-ctx.Done():
		}
	}

	post(func(ed *editor.Editor, comp *ui.Compositor) {
		ed.SetMode(editor.ModeInsert)
		hooks.OnModeSwitch(ed, comp, editor.ModeNormal, editor.ModeInsert)
	})

	for _, r := range "pri" {
		r := r
		post(func(ed *editor.Editor, comp *ui.Compositor) {
			insertRune(ed, r)
			hooks.PostInsertChar(ed, comp, r)
		})
		pause(20 * time.Millisecond)
	}

	// Let the debounce elapse and the wave complete.
	pause(400 * time.Millisecond)
	post(func(ed *editor.Editor, comp *ui.Compositor) {
		logPopup(comp, log, "after typing 'pri'")
	})

	post(func(ed *editor.Editor, comp *ui.Compositor) {
		insertRune(ed, 'n')
		hooks.PostInsertChar(ed, comp, 'n')
	})
	pause(100 * time.Millisecond)
	post(func(ed *editor.Editor, comp *ui.Compositor) {
		logPopup(comp, log, "after narrowing to 'prin'")
	})

	post(func(ed *editor.Editor, comp *ui.Compositor) {
		deleteRuneBackward(ed)
		hooks.PostCommand(ed, comp, input.CmdDeleteCharBackward)
	})
	pause(100 * time.Millisecond)
	post(func(ed *editor.Editor, comp *ui.Compositor) {
		logPopup(comp, log, "after deleting back to 'pri'")
	})

	post(func(ed *editor.Editor, comp *ui.Compositor) {
		hooks.OnModeSwitch(ed, comp, editor.ModeInsert, editor.ModeNormal)
		ed.SetMode(editor.ModeNormal)
		logPopup(comp, log, "after leaving insert mode")
	})

	pause(100 * time.Millisecond)
}

func insertRune(ed *editor.Editor, r rune) {
	view, doc := ed.CurrentRef()
	if view == nil || doc == nil {
		return
	}
	if _, err := doc.Buffer().Insert(view.Cursor(), string(r)); err != nil {
		return
	}
	view.SetCursor(view.Cursor() + int64(len(string(r))))
}

func deleteRuneBackward(ed *editor.Editor) {
	view, doc := ed.CurrentRef()
	if view == nil || doc == nil || view.Cursor() == 0 {
		return
	}
	if _, err := doc.Buffer().Delete(view.Cursor()-1, view.Cursor()); err != nil {
		return
	}
	view.SetCursor(view.Cursor() - 1)
}

func logPopup(comp *ui.Compositor, log *zap.SugaredLogger, when string) {
	menu := comp.EditorView().Completion()
	if menu == nil {
		log.Infow("popup closed", "when", when)
		return
	}
	filtered := menu.Filtered()
	labels := make([]string, 0, len(filtered))
	for _, it := range filtered {
		labels = append(labels, it.LSP.Label)
	}
	log.Infow("popup open",
		"when", when,
		"filter", menu.Filter(),
		"candidates", labels,
	)
}
