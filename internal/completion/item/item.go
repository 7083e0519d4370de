// Package item defines the typed completion items and provider
// responses exchanged between provider tasks and the popup owner.
package item

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ProviderKind distinguishes the sources completion items come from.
type ProviderKind int

const (
	// ProviderLSP is a language-server provider.
	ProviderLSP ProviderKind = iota

	// ProviderPath is the filesystem path provider.
	ProviderPath
)

// ProviderID identifies one completion provider. Path completion is a
// provider of its own; LSP providers are distinguished by server name.
type ProviderID struct {
	Kind ProviderKind

	// Server is the language-server name for ProviderLSP.
	Server string
}

// String returns a log-friendly provider name.
func (p ProviderID) String() string {
	if p.Kind == ProviderPath {
		return "path"
	}
	return "lsp/" + p.Server
}

// PathProvider is the id of the filesystem path provider.
var PathProvider = ProviderID{Kind: ProviderPath}

// LSPProvider returns the id for a language server.
func LSPProvider(server string) ProviderID {
	return ProviderID{Kind: ProviderLSP, Server: server}
}

// Item is one completion candidate tagged with its provider.
type Item struct {
	// LSP is the protocol-level item. Path items reuse the same shape
	// with Kind set to File/Folder.
	LSP protocol.CompletionItem

	// Provider is the source this item came from.
	Provider ProviderID
}

// FilterText returns the text filtering should match against.
func (it Item) FilterText() string {
	if it.LSP.FilterText != nil && *it.LSP.FilterText != "" {
		return *it.LSP.FilterText
	}
	return it.LSP.Label
}

// Response is one provider's reply for one request wave.
type Response struct {
	// Provider is the responding provider.
	Provider ProviderID

	// Items are the returned candidates, already typed. May be empty.
	Items []Item

	// Incomplete means the provider may hold more items than returned
	// and qualifies for incremental re-querying.
	Incomplete bool
}

// IsUninformative reports whether the response carries no information:
// it is empty and not marked incomplete. Uninformative responses are
// filtered out before they reach the popup owner.
func (r Response) IsUninformative() bool {
	return len(r.Items) == 0 && !r.Incomplete
}
