package editor

import (
	"errors"

	"github.com/dshills/suggest/internal/config"
	"github.com/dshills/suggest/internal/engine/buffer"
)

// Errors returned by editor operations.
var (
	ErrNoFocusedView   = errors.New("no focused view")
	ErrUnknownView     = errors.New("unknown view")
	ErrUnknownDocument = errors.New("unknown document")
)

// Editor is the single-owner editor state.
type Editor struct {
	mode    Mode
	cfg     *config.Store
	docs    map[DocumentID]*Document
	views   map[ViewID]*View
	focused ViewID

	nextDoc  DocumentID
	nextView ViewID
}

// New creates an editor in normal mode with the given config store.
func New(cfg *config.Store) *Editor {
	return &Editor{
		mode:  ModeNormal,
		cfg:   cfg,
		docs:  make(map[DocumentID]*Document),
		views: make(map[ViewID]*View),
	}
}

// Mode returns the current editing mode.
func (e *Editor) Mode() Mode { return e.mode }

// SetMode switches the editing mode.
func (e *Editor) SetMode(m Mode) { e.mode = m }

// Config returns the current configuration snapshot.
func (e *Editor) Config() config.Config { return e.cfg.Get() }

// NewDocument registers a document with initial content.
func (e *Editor) NewDocument(text, languageID string) *Document {
	e.nextDoc++
	doc := &Document{
		id:             e.nextDoc,
		buf:            buffer.FromString(text),
		languageID:     languageID,
		pathCompletion: e.cfg.Get().PathCompletion,
	}
	e.docs[doc.id] = doc
	return doc
}

// NewView opens a view onto the document and focuses it.
func (e *Editor) NewView(doc DocumentID) (*View, error) {
	if _, ok := e.docs[doc]; !ok {
		return nil, ErrUnknownDocument
	}
	e.nextView++
	v := &View{id: e.nextView, doc: doc}
	e.views[v.id] = v
	e.focused = v.id
	return v, nil
}

// FocusView switches the focused view.
func (e *Editor) FocusView(id ViewID) error {
	if _, ok := e.views[id]; !ok {
		return ErrUnknownView
	}
	e.focused = id
	return nil
}

// Document returns a document by id.
func (e *Editor) Document(id DocumentID) (*Document, bool) {
	d, ok := e.docs[id]
	return d, ok
}

// View returns a view by id.
func (e *Editor) View(id ViewID) (*View, bool) {
	v, ok := e.views[id]
	return v, ok
}

// CurrentRef returns the focused view and its document. Both are nil
// when no view is focused.
func (e *Editor) CurrentRef() (*View, *Document) {
	v, ok := e.views[e.focused]
	if !ok {
		return nil, nil
	}
	return v, e.docs[v.doc]
}
