package ui

import (
	"strings"

	"github.com/dshills/suggest/internal/completion/item"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
)

// Popup menu dimensions.
const (
	maxMenuHeight = 10
	minMenuWidth  = 12
)

// EditorView is the component owning the completion popup. A nil menu
// means no session is active; at most one session exists at a time.
type EditorView struct {
	completion *Menu
}

// NewEditorView creates an editor view with no active completion.
func NewEditorView() *EditorView {
	return &EditorView{}
}

// Completion returns the active popup, or nil.
func (v *EditorView) Completion() *Menu {
	return v.completion
}

// SetCompletion opens a completion popup from a first batch of items
// and returns its screen placement.
func (v *EditorView) SetCompletion(
	ed *editor.Editor,
	savepoint *editor.SavePoint,
	items []item.Item,
	incomplete map[item.ProviderID]int8,
	pos buffer.ByteOffset,
	size Rect,
) Rect {
	v.completion = NewMenu(items, incomplete, savepoint, pos)
	return v.completionArea(ed, size)
}

// ClearCompletion closes the popup, restoring the savepoint when
// speculative path-completion edits were applied.
func (v *EditorView) ClearCompletion(ed *editor.Editor) {
	menu := v.completion
	if menu == nil {
		return
	}
	v.completion = nil

	menu.IncompleteListController().Cancel()
	if menu.PreviewApplied() && menu.SavePoint() != nil {
		// Savepoint restore failures leave the buffer as-is; the text
		// is still consistent, just with the preview kept.
		_ = menu.SavePoint().Restore(ed)
	}
}

// completionArea computes the popup placement below the trigger
// position, clamped to the viewport.
func (v *EditorView) completionArea(ed *editor.Editor, viewport Rect) Rect {
	menu := v.completion
	if menu == nil {
		return Rect{}
	}
	_, doc := ed.CurrentRef()
	if doc == nil {
		return Rect{}
	}

	row, col := cellAt(doc, menu.TriggerPos())

	w := minMenuWidth
	h := 0
	for _, it := range menu.Filtered() {
		if lw := len(it.LSP.Label) + 2; lw > w {
			w = lw
		}
		h++
	}
	if h > maxMenuHeight {
		h = maxMenuHeight
	}

	r := Rect{X: col, Y: row + 1, W: w, H: h}
	return r.Clamp(viewport)
}

// cellAt converts a byte offset into (row, column) cell coordinates.
func cellAt(doc *editor.Document, at buffer.ByteOffset) (int, int) {
	text := doc.Buffer().Text()
	if at < 0 {
		at = 0
	}
	if at > buffer.ByteOffset(len(text)) {
		at = buffer.ByteOffset(len(text))
	}
	prefix := text[:at]
	row := strings.Count(prefix, "\n")
	col := int(at)
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = int(at) - i - 1
	}
	return row, col
}
