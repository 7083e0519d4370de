package ui

import "github.com/dshills/suggest/internal/editor"

// Popup is a removable overlay component with a computable placement.
type Popup interface {
	ID() string
	Area(viewport Rect, ed *editor.Editor) Rect
}

// Compositor tracks the viewport, the editor view, and any overlay
// popups. It is owned by the editor goroutine.
type Compositor struct {
	size   Rect
	view   *EditorView
	popups map[string]Popup
}

// NewCompositor creates a compositor with the given viewport size.
func NewCompositor(size Rect) *Compositor {
	return &Compositor{
		size:   size,
		view:   NewEditorView(),
		popups: make(map[string]Popup),
	}
}

// Size returns the viewport rectangle.
func (c *Compositor) Size() Rect { return c.size }

// Resize updates the viewport rectangle.
func (c *Compositor) Resize(size Rect) { c.size = size }

// EditorView returns the editor view component.
func (c *Compositor) EditorView() *EditorView { return c.view }

// AddPopup registers an overlay popup, replacing any popup with the
// same id.
func (c *Compositor) AddPopup(p Popup) {
	c.popups[p.ID()] = p
}

// FindPopup returns a popup by id.
func (c *Compositor) FindPopup(id string) (Popup, bool) {
	p, ok := c.popups[id]
	return p, ok
}

// Remove deletes a popup by id.
func (c *Compositor) Remove(id string) {
	delete(c.popups, id)
}
