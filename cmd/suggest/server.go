package main

import (
	"context"
	"strings"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/lsp"
)

// demoServer is an in-memory language server with a fixed symbol table
// and simulated network latency.
type demoServer struct {
	symbols []string
	latency time.Duration
}

func newDemoServer() *demoServer {
	return &demoServer{
		symbols: []string{
			"print", "println", "printf", "private", "process",
			"panic", "parse", "package", "range", "return",
		},
		latency: 30 * time.Millisecond,
	}
}

func (s *demoServer) Name() string { return "demo-ls" }

func (s *demoServer) CompletionOptions() *protocol.CompletionOptions {
	return &protocol.CompletionOptions{
		TriggerCharacters: []string{"."},
	}
}

func (s *demoServer) Completion(ctx context.Context, params lsp.CompletionParams) (protocol.CompletionList, error) {
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
		return protocol.CompletionList{}, ctx.Err()
	}

	prefix := wordBefore(params.Text, params.Cursor)
	kind := protocol.CompletionItemKindFunction

	var items []protocol.CompletionItem
	for _, sym := range s.symbols {
		if prefix == "" || strings.HasPrefix(sym, prefix) {
			items = append(items, protocol.CompletionItem{
				Label: sym,
				Kind:  &kind,
			})
		}
	}
	return protocol.CompletionList{Items: items}, nil
}

func wordBefore(text string, cursor buffer.ByteOffset) string {
	if cursor > buffer.ByteOffset(len(text)) {
		cursor = buffer.ByteOffset(len(text))
	}
	start := int(cursor)
	for start > 0 && buffer.IsWordByte(text[start-1]) {
		start--
	}
	return text[start:int(cursor)]
}
