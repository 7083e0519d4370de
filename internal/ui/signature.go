package ui

import (
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
)

// SignatureHelpID identifies the signature-help popup on the compositor.
const SignatureHelpID = "signature-help"

// SignatureHelp is the advisory popup showing the active call signature.
// It competes with the completion popup for screen space and loses.
type SignatureHelp struct {
	Signature string
	Anchor    buffer.ByteOffset

	// Lines is the rendered height of the popup.
	Lines int
}

// ID returns the popup identifier.
func (s *SignatureHelp) ID() string { return SignatureHelpID }

// Area returns the popup's placement for the given viewport. Signature
// help sits directly above its anchor row.
func (s *SignatureHelp) Area(viewport Rect, ed *editor.Editor) Rect {
	_, doc := ed.CurrentRef()
	if doc == nil {
		return Rect{}
	}
	row, col := cellAt(doc, s.Anchor)
	h := s.Lines
	if h <= 0 {
		h = 1
	}
	r := Rect{
		X: col,
		Y: row - h,
		W: len(s.Signature) + 2,
		H: h,
	}
	return r.Clamp(viewport)
}
