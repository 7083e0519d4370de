// Package lsp defines the contract between the completion orchestrator
// and language-server clients.
//
// The wire-level protocol client lives outside this module; the
// orchestrator only needs server capabilities (trigger characters) and a
// way to issue a completion request and receive typed items back.
package lsp

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dshills/suggest/internal/engine/buffer"
)

// Server is a running language-server client for one language.
type Server interface {
	// Name returns the server's unique identifier (e.g. "gopls").
	Name() string

	// CompletionOptions returns the server's declared completion
	// capabilities, or nil if the server does not provide completion.
	CompletionOptions() *protocol.CompletionOptions

	// Completion requests completion items at the given cursor offset.
	// The returned list may be marked incomplete, in which case it is
	// eligible for incremental re-querying.
	Completion(ctx context.Context, params CompletionParams) (protocol.CompletionList, error)
}

// CompletionParams describes a completion request.
type CompletionParams struct {
	// Cursor is the byte offset the request was issued at.
	Cursor buffer.ByteOffset

	// Text is the document content at request time.
	Text string

	// TriggerKind distinguishes invoked, trigger-character, and
	// incomplete-retrigger requests.
	TriggerKind protocol.CompletionTriggerKind

	// TriggerCharacter is set when TriggerKind is
	// CompletionTriggerKindTriggerCharacter.
	TriggerCharacter string
}

// TriggerCharacters returns the trigger characters a server declares,
// or nil when it declares none.
func TriggerCharacters(s Server) []string {
	opts := s.CompletionOptions()
	if opts == nil {
		return nil
	}
	return opts.TriggerCharacters
}
