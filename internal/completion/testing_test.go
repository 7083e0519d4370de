package completion

import (
	"context"
	"sync"
	"testing"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dshills/suggest/internal/config"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/lsp"
)

// fakeServer is an in-memory language server with controllable latency,
// items, and failure mode.
type fakeServer struct {
	name         string
	triggerChars []string
	noCompletion bool
	latency      time.Duration
	err          error
	incomplete   bool
	items        []string

	mu    sync.Mutex
	calls []lsp.CompletionParams
}

func (s *fakeServer) Name() string { return s.name }

func (s *fakeServer) CompletionOptions() *protocol.CompletionOptions {
	if s.noCompletion {
		return nil
	}
	return &protocol.CompletionOptions{TriggerCharacters: s.triggerChars}
}

func (s *fakeServer) Completion(ctx context.Context, params lsp.CompletionParams) (protocol.CompletionList, error) {
	s.mu.Lock()
	s.calls = append(s.calls, params)
	s.mu.Unlock()

	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return protocol.CompletionList{}, ctx.Err()
		}
	}
	if s.err != nil {
		return protocol.CompletionList{}, s.err
	}

	items := make([]protocol.CompletionItem, len(s.items))
	for i, label := range s.items {
		items[i] = protocol.CompletionItem{Label: label}
	}
	return protocol.CompletionList{Items: items, IsIncomplete: s.incomplete}, nil
}

func (s *fakeServer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *fakeServer) lastCall() (lsp.CompletionParams, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return lsp.CompletionParams{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// insertEditor builds an insert-mode editor showing the given text with
// the cursor at its end.
func insertEditor(t *testing.T, cfg config.Config, text string, servers ...lsp.Server) (*editor.Editor, *editor.View, *editor.Document) {
	t.Helper()
	ed := editor.New(config.NewStore(cfg))
	ed.SetMode(editor.ModeInsert)
	doc := ed.NewDocument(text, "go")
	for _, s := range servers {
		doc.AttachServer(s)
	}
	view, err := ed.NewView(doc.ID())
	if err != nil {
		t.Fatalf("NewView() error: %v", err)
	}
	view.SetCursor(doc.Buffer().Len())
	return ed, view, doc
}
