package editor

import (
	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/lsp"
)

// DocumentID identifies a document for the lifetime of the editor.
type DocumentID int

// ViewID identifies a view for the lifetime of the editor.
type ViewID int

// Document is an open text document with its attached language servers.
type Document struct {
	id             DocumentID
	buf            *buffer.Buffer
	languageID     string
	servers        []lsp.Server
	pathCompletion bool
}

// ID returns the document's identity.
func (d *Document) ID() DocumentID { return d.id }

// Buffer returns the document's text buffer.
func (d *Document) Buffer() *buffer.Buffer { return d.buf }

// LanguageID returns the document's language identifier.
func (d *Document) LanguageID() string { return d.languageID }

// Servers returns the language servers attached to this document.
func (d *Document) Servers() []lsp.Server { return d.servers }

// AttachServer adds a language server to the document.
func (d *Document) AttachServer(s lsp.Server) {
	d.servers = append(d.servers, s)
}

// PathCompletionEnabled reports whether path completion is enabled for
// this document.
func (d *Document) PathCompletionEnabled() bool { return d.pathCompletion }

// SetPathCompletion toggles path completion for this document.
func (d *Document) SetPathCompletion(enabled bool) { d.pathCompletion = enabled }

// View is a window onto a document with its own primary cursor.
type View struct {
	id     ViewID
	doc    DocumentID
	cursor buffer.ByteOffset
}

// ID returns the view's identity.
func (v *View) ID() ViewID { return v.id }

// Document returns the id of the document the view shows.
func (v *View) Document() DocumentID { return v.doc }

// Cursor returns the primary cursor's byte offset.
func (v *View) Cursor() buffer.ByteOffset { return v.cursor }

// SetCursor moves the primary cursor.
func (v *View) SetCursor(at buffer.ByteOffset) { v.cursor = at }
