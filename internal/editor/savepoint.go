package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/suggest/internal/engine/buffer"
)

// SavePoint is a snapshot of a document's text and a view's cursor,
// taken before path completion makes speculative edits. It is owned by
// the completion session for as long as the session is open.
type SavePoint struct {
	id     uuid.UUID
	doc    DocumentID
	view   ViewID
	text   string
	cursor buffer.ByteOffset
}

// NewSavePoint snapshots the given view/document pair.
func NewSavePoint(v *View, d *Document) *SavePoint {
	return &SavePoint{
		id:     uuid.New(),
		doc:    d.ID(),
		view:   v.ID(),
		text:   d.Buffer().Text(),
		cursor: v.Cursor(),
	}
}

// ID returns the savepoint's unique id.
func (sp *SavePoint) ID() uuid.UUID { return sp.id }

// Document returns the snapshotted document's id.
func (sp *SavePoint) Document() DocumentID { return sp.doc }

// Restore puts the snapshotted document and cursor back. Restoring
// against an editor where the document no longer exists is a no-op.
func (sp *SavePoint) Restore(e *Editor) error {
	d, ok := e.Document(sp.doc)
	if !ok {
		return nil
	}
	if err := d.Buffer().Replace(0, d.Buffer().Len(), sp.text); err != nil {
		return err
	}
	if v, ok := e.View(sp.view); ok {
		v.SetCursor(sp.cursor)
	}
	return nil
}
