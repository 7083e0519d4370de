package completion

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/dshills/suggest/internal/completion/item"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/task"
	"github.com/dshills/suggest/internal/ui"
)

// collectWave drains one request wave: the first informative response
// opens the popup, every later one is merged into it. Reconciliation is
// strictly sequential with respect to arrival order — each response is
// fully applied on the editor goroutine before the next is drained —
// even though the underlying requests ran concurrently.
func (h *Handler) collectWave(ctx context.Context, set *ResponseSet, handle task.Handle, trig Trigger, savepoint *editor.SavePoint) {
	resp, ok, err := set.NextInformative(ctx, false)
	if err != nil {
		h.fatal(err)
		return
	}
	if !ok {
		return
	}

	incomplete := make(map[item.ProviderID]int8)
	if resp.Incomplete {
		incomplete[resp.Provider] = 0
	}

	derr := h.queue.Dispatch(ctx, func(ed *editor.Editor, comp *ui.Compositor) {
		h.show(ed, comp, resp.Items, incomplete, trig, savepoint)
	})
	if derr != nil {
		return
	}

	h.replaceCompletions(ctx, set, handle, false)
}

// replaceCompletions forwards every remaining informative response to
// the editor goroutine, one at a time, until the pending set is empty.
func (h *Handler) replaceCompletions(ctx context.Context, set *ResponseSet, handle task.Handle, acceptUninformative bool) {
	for {
		resp, ok, err := set.NextInformative(ctx, acceptUninformative)
		if err != nil {
			h.fatal(err)
			return
		}
		if !ok {
			return
		}

		derr := h.queue.Dispatch(ctx, func(ed *editor.Editor, comp *ui.Compositor) {
			h.apply(ed, comp, resp, handle)
		})
		if derr != nil {
			return
		}
	}
}

// apply merges one response into the open popup. Runs on the editor
// goroutine. The handle check is the primary defense against
// out-of-order arrivals from a superseded request wave.
func (h *Handler) apply(ed *editor.Editor, comp *ui.Compositor, resp item.Response, handle task.Handle) {
	view := comp.EditorView()
	menu := view.Completion()
	if menu == nil {
		return
	}
	if handle.IsCanceled() {
		h.logger.Debugw("dropping outdated completion response",
			"provider", resp.Provider.String(),
			"items", len(resp.Items),
		)
		return
	}

	menu.ReplaceProviderCompletions(resp)
	if menu.IsEmpty() {
		view.ClearCompletion(ed)
		// Closing may immediately justify a fresh session, e.g. when
		// the sole reason the popup existed no longer applies.
		TriggerAutoCompletion(h.events, ed, false)
	}
}

// show opens a session from the first accepted batch of results. Runs
// on the editor goroutine.
func (h *Handler) show(
	ed *editor.Editor,
	comp *ui.Compositor,
	items []item.Item,
	incomplete map[item.ProviderID]int8,
	trig Trigger,
	savepoint *editor.SavePoint,
) {
	view, doc := ed.CurrentRef()
	if view == nil || doc == nil {
		return
	}
	// The user may have switched document/view or left insert mode
	// while the request was in flight; in all of those cases the batch
	// is discarded. Identity is compared, not position.
	if ed.Mode() != editor.ModeInsert || view.ID() != trig.View || doc.ID() != trig.Doc {
		h.logger.Debugw("discarding stale completion batch",
			"trigger_view", trig.View,
			"trigger_doc", trig.Doc,
		)
		return
	}

	size := comp.Size()
	ev := comp.EditorView()
	if ev.Completion() != nil {
		// Only one session may be open; first writer wins.
		return
	}

	area := ev.SetCompletion(ed, savepoint, items, incomplete, trig.Pos, size)

	// Visual space is a shared exclusive resource; completion wins.
	if sig, ok := comp.FindPopup(ui.SignatureHelpID); ok {
		if area.Intersects(sig.Area(size, ed)) {
			comp.Remove(ui.SignatureHelpID)
		}
	}
}

// fatal reports a provider task failure. A buggy provider integration
// must not be silently invisible, so this panics in development builds
// and logs an error in production. Context cancellation during shutdown
// is not a defect.
func (h *Handler) fatal(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	h.logger.DPanicw("completion provider task failed", "error", err)
}
