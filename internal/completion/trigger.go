package completion

import (
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/lsp"
)

// Decide evaluates current editor state and returns the completion
// event that should fire, if any.
//
// Priority order matters: an explicit provider trigger character always
// wins over the generic word-length heuristic, and the path-separator
// check comes before the length heuristic so typing "/" opens file
// completion immediately instead of waiting for more characters. With
// triggerCharOnly set, the word-length heuristic is skipped entirely.
func Decide(ed *editor.Editor, triggerCharOnly bool) (Event, bool) {
	cfg := ed.Config()
	if !cfg.AutoCompletion {
		return nil, false
	}

	view, doc := ed.CurrentRef()
	if view == nil || doc == nil {
		return nil, false
	}
	cursor := view.Cursor()
	buf := doc.Buffer()

	isTriggerChar := false
	for _, srv := range doc.Servers() {
		for _, tc := range lsp.TriggerCharacters(srv) {
			if tc != "" && buf.EndsWith(tc, cursor) {
				isTriggerChar = true
				break
			}
		}
		if isTriggerChar {
			break
		}
	}

	isPathTrigger := false
	if b, ok := buf.LastByteBefore(cursor); ok {
		isPathTrigger = isPathSeparator(b)
	}

	if isTriggerChar || (isPathTrigger && doc.PathCompletionEnabled()) {
		return TriggerChar{Cursor: cursor, Doc: doc.ID(), View: view.ID()}, true
	}

	if triggerCharOnly {
		return nil, false
	}

	runes := buf.RunesBefore(cursor, cfg.CompletionTriggerLen)
	if len(runes) < cfg.CompletionTriggerLen {
		return nil, false
	}
	for _, r := range runes {
		if !buffer.IsWordRune(r) {
			return nil, false
		}
	}
	return AutoTrigger{Cursor: cursor, Doc: doc.ID(), View: view.ID()}, true
}

// TriggerAutoCompletion evaluates the trigger conditions and, when one
// holds, sends the event on the handler's channel. The send blocks when
// the channel is full; event delivery is ordered and back-pressured.
func TriggerAutoCompletion(tx chan<- Event, ed *editor.Editor, triggerCharOnly bool) {
	if ev, ok := Decide(ed, triggerCharOnly); ok {
		tx <- ev
	}
}
