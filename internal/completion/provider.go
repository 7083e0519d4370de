package completion

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dshills/suggest/internal/completion/item"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/lsp"
)

// TriggerKind records why a request wave was issued.
type TriggerKind int

const (
	// TriggerKindAuto is the consecutive-word-characters heuristic.
	TriggerKindAuto TriggerKind = iota

	// TriggerKindChar is a provider trigger character or path separator.
	TriggerKindChar

	// TriggerKindIncomplete is an incremental re-query of a provider
	// whose previous list was marked incomplete.
	TriggerKindIncomplete
)

// Request is the immutable snapshot handed to provider tasks. It never
// references live editor state.
type Request struct {
	// Text is the document content at request time.
	Text string

	// Cursor is the byte offset the request was issued at.
	Cursor buffer.ByteOffset

	// Kind is why the request fired.
	Kind TriggerKind
}

// Provider produces completion responses for requests.
type Provider interface {
	ID() item.ProviderID
	Complete(ctx context.Context, req Request) (item.Response, error)
}

// lspProvider adapts a language server to the Provider interface.
type lspProvider struct {
	srv lsp.Server
}

func (p lspProvider) ID() item.ProviderID {
	return item.LSPProvider(p.srv.Name())
}

func (p lspProvider) Complete(ctx context.Context, req Request) (item.Response, error) {
	kind := protocol.CompletionTriggerKindInvoked
	switch req.Kind {
	case TriggerKindChar:
		kind = protocol.CompletionTriggerKindTriggerCharacter
	case TriggerKindIncomplete:
		kind = protocol.CompletionTriggerKindTriggerForIncompleteCompletions
	}

	list, err := p.srv.Completion(ctx, lsp.CompletionParams{
		Cursor:      req.Cursor,
		Text:        req.Text,
		TriggerKind: kind,
	})
	if err != nil {
		return item.Response{}, errors.Wrapf(err, "completion request to %s", p.srv.Name())
	}

	id := p.ID()
	items := make([]item.Item, len(list.Items))
	for i, ci := range list.Items {
		items[i] = item.Item{LSP: ci, Provider: id}
	}
	return item.Response{Provider: id, Items: items, Incomplete: list.IsIncomplete}, nil
}

// PathCompleter lists directory entries for the path ending at the
// cursor. Relative paths resolve against WorkDir.
type PathCompleter struct {
	WorkDir string
}

// ID returns the path provider id.
func (p *PathCompleter) ID() item.ProviderID {
	return item.PathProvider
}

// Complete scans the directory named by the path fragment before the
// cursor. A missing or unreadable directory yields an empty response,
// not an error: the fragment may simply not be a path.
func (p *PathCompleter) Complete(_ context.Context, req Request) (item.Response, error) {
	fragment := pathFragmentBefore(req.Text, req.Cursor)
	dir := fragment
	if !strings.HasSuffix(fragment, "/") {
		dir = filepath.Dir(fragment)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.WorkDir, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return item.Response{Provider: p.ID()}, nil
	}

	items := make([]item.Item, 0, len(entries))
	for _, e := range entries {
		kind := protocol.CompletionItemKindFile
		if e.IsDir() {
			kind = protocol.CompletionItemKindFolder
		}
		items = append(items, item.Item{
			Provider: p.ID(),
			LSP: protocol.CompletionItem{
				Label: e.Name(),
				Kind:  &kind,
			},
		})
	}
	return item.Response{Provider: p.ID(), Items: items}, nil
}

// pathFragmentBefore returns the path-looking run of characters ending
// at the cursor.
func pathFragmentBefore(text string, cursor buffer.ByteOffset) string {
	if cursor > buffer.ByteOffset(len(text)) {
		cursor = buffer.ByteOffset(len(text))
	}
	start := int(cursor)
	for start > 0 {
		c := text[start-1]
		if c == ' ' || c == '\t' || c == '\n' || c == '"' || c == '\'' {
			break
		}
		start--
	}
	return text[start:int(cursor)]
}

// providersFor assembles the provider set for one request wave: every
// language server declaring completion support, plus the path provider
// when the wave was started by a path separator.
func providersFor(doc *editor.Document, path *PathCompleter, includePath bool) []Provider {
	var out []Provider
	for _, srv := range doc.Servers() {
		if srv.CompletionOptions() != nil {
			out = append(out, lspProvider{srv: srv})
		}
	}
	if includePath && path != nil && doc.PathCompletionEnabled() {
		out = append(out, path)
	}
	return out
}
