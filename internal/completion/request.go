package completion

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/suggest/internal/completion/item"
	"github.com/dshills/suggest/internal/dispatch"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/task"
	"github.com/dshills/suggest/internal/ui"
)

// Debounce delays before a pending trigger fires. Trigger characters
// fire almost immediately; the word heuristic waits for typing to pause.
const (
	defaultDebounceAuto = 120 * time.Millisecond
	defaultDebounceChar = 5 * time.Millisecond
)

// Trigger is the immutable context captured when a request wave is
// issued. A reply is only applicable while the current (mode, view,
// document) still equals the trigger's; identity is compared, not
// position, since the cursor may have legitimately advanced.
type Trigger struct {
	Pos  buffer.ByteOffset
	View editor.ViewID
	Doc  editor.DocumentID
	Kind TriggerKind
}

// Handler is the request-issuing side of the orchestrator: it consumes
// completion events over an ordered, back-pressured channel, debounces
// them, and spawns one provider task per capable provider into a
// ResponseSet whose results are reconciled on the editor goroutine.
type Handler struct {
	events     chan Event
	queue      *dispatch.Queue
	logger     *zap.SugaredLogger
	controller *task.Controller
	path       *PathCompleter

	debounceAuto time.Duration
	debounceChar time.Duration
}

// HandlerOption configures the handler.
type HandlerOption func(*Handler)

// WithPathCompleter enables filesystem path completion.
func WithPathCompleter(p *PathCompleter) HandlerOption {
	return func(h *Handler) { h.path = p }
}

// WithDebounce overrides the debounce delays.
func WithDebounce(auto, triggerChar time.Duration) HandlerOption {
	return func(h *Handler) {
		h.debounceAuto = auto
		h.debounceChar = triggerChar
	}
}

// NewHandler creates a request handler publishing results through the
// given dispatch queue.
func NewHandler(queue *dispatch.Queue, logger *zap.SugaredLogger, opts ...HandlerOption) *Handler {
	h := &Handler{
		events:       make(chan Event, 64),
		queue:        queue,
		logger:       logger,
		controller:   task.NewController(),
		debounceAuto: defaultDebounceAuto,
		debounceChar: defaultDebounceChar,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Events returns the channel completion events are sent on.
func (h *Handler) Events() chan<- Event {
	return h.events
}

// CancelWave supersedes the current request wave, making every
// outstanding result inert.
func (h *Handler) CancelWave() {
	h.controller.Cancel()
}

// Run consumes events until the context is canceled. It owns the
// debounce timer and is the only goroutine that fires request waves.
func (h *Handler) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending *Trigger

	rearm := func(d time.Duration) {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(d)
	}
	disarm := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		pending = nil
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-h.events:
			switch ev := ev.(type) {
			case TriggerChar:
				pending = &Trigger{Pos: ev.Cursor, View: ev.View, Doc: ev.Doc, Kind: TriggerKindChar}
				rearm(h.debounceChar)

			case AutoTrigger:
				// An earlier pending trigger in the same view/document
				// keeps its anchor; only the timer restarts.
				if pending == nil || pending.View != ev.View || pending.Doc != ev.Doc || pending.Pos > ev.Cursor {
					pending = &Trigger{Pos: ev.Cursor, View: ev.View, Doc: ev.Doc, Kind: TriggerKindAuto}
				}
				rearm(h.debounceAuto)

			case DeleteText:
				// Deleting back past the pending trigger abandons it and
				// makes any in-flight wave inert.
				if pending != nil && ev.Cursor < pending.Pos {
					disarm()
					h.controller.Cancel()
				}

			case Cancel:
				disarm()
				h.controller.Cancel()
			}

		case <-timer.C:
			if pending == nil {
				continue
			}
			trig := *pending
			pending = nil
			h.fire(ctx, trig)
		}
	}
}

// fire snapshots editor state on the owner goroutine and spawns the
// provider tasks for one request wave.
func (h *Handler) fire(ctx context.Context, trig Trigger) {
	err := h.queue.Dispatch(ctx, func(ed *editor.Editor, comp *ui.Compositor) {
		view, doc := ed.CurrentRef()
		if ed.Mode() != editor.ModeInsert || view == nil || doc == nil {
			return
		}
		if view.ID() != trig.View || doc.ID() != trig.Doc {
			return
		}
		cursor := view.Cursor()
		if cursor < trig.Pos {
			// Deleted back past the trigger while debouncing.
			return
		}

		providers := providersFor(doc, h.path, trig.Kind == TriggerKindChar)
		if len(providers) == 0 {
			return
		}

		// A new wave supersedes every outstanding handle.
		handle := h.controller.Restart()
		savepoint := editor.NewSavePoint(view, doc)
		req := Request{Text: doc.Buffer().Text(), Cursor: cursor, Kind: trig.Kind}

		set := NewResponseSet(ctx)
		for _, p := range providers {
			p := p
			set.Spawn(func(tctx context.Context) (item.Response, error) {
				return p.Complete(tctx, req)
			})
		}
		set.Seal()

		h.logger.Debugw("completion wave fired",
			"kind", trig.Kind,
			"providers", len(providers),
			"cursor", cursor,
		)
		go h.collectWave(ctx, set, handle, trig, savepoint)
	})
	if err != nil {
		h.logger.Debugw("completion wave not dispatched", "error", err)
	}
}

// RequestIncompleteList re-queries the providers whose last reply was
// marked incomplete, bounded by the per-provider counters. Runs on the
// editor goroutine (called from the session hooks).
func (h *Handler) RequestIncompleteList(ctx context.Context, ed *editor.Editor, menu *ui.Menu, handle task.Handle) {
	view, doc := ed.CurrentRef()
	if view == nil || doc == nil {
		return
	}

	eligible := menu.IncompleteProviders(ed.Config().IncompleteRequeryLimit)
	if len(eligible) == 0 {
		return
	}

	byID := make(map[item.ProviderID]Provider)
	for _, p := range providersFor(doc, h.path, true) {
		byID[p.ID()] = p
	}

	req := Request{Text: doc.Buffer().Text(), Cursor: view.Cursor(), Kind: TriggerKindIncomplete}
	set := NewResponseSet(ctx)
	spawned := 0
	for _, id := range eligible {
		p, ok := byID[id]
		if !ok {
			continue
		}
		set.Spawn(func(tctx context.Context) (item.Response, error) {
			return p.Complete(tctx, req)
		})
		spawned++
	}
	set.Seal()
	if spawned == 0 {
		return
	}

	// Even an empty complete reply matters here: it supersedes the
	// provider's items and clears its incomplete counter.
	go h.replaceCompletions(ctx, set, handle, true)
}
