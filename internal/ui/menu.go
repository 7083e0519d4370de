package ui

import (
	"strings"

	"github.com/dshills/suggest/internal/completion/item"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/engine/buffer"
	"github.com/dshills/suggest/internal/task"
)

// Menu is the completion popup: per-provider item sets, the accumulated
// filter typed since the session opened, and the per-provider
// incomplete-list counters.
//
// The filter is applied on top of the original item sets, so removing
// filter characters widens the candidate list back to what each
// provider contributed.
type Menu struct {
	providerItems map[item.ProviderID][]item.Item
	incomplete    map[item.ProviderID]int8
	filter        []rune

	savepoint      *editor.SavePoint
	triggerPos     buffer.ByteOffset
	previewApplied bool

	incompleteCtl *task.Controller
}

// NewMenu builds a popup from the first accepted batch of items.
func NewMenu(items []item.Item, incomplete map[item.ProviderID]int8, savepoint *editor.SavePoint, pos buffer.ByteOffset) *Menu {
	grouped := make(map[item.ProviderID][]item.Item)
	for _, it := range items {
		grouped[it.Provider] = append(grouped[it.Provider], it)
	}
	if incomplete == nil {
		incomplete = make(map[item.ProviderID]int8)
	}
	return &Menu{
		providerItems: grouped,
		incomplete:    incomplete,
		savepoint:     savepoint,
		triggerPos:    pos,
		incompleteCtl: task.NewController(),
	}
}

// ReplaceProviderCompletions merges a later response into the popup. A
// provider's new reply supersedes its previous contribution entirely.
func (m *Menu) ReplaceProviderCompletions(resp item.Response) {
	m.providerItems[resp.Provider] = resp.Items
	if resp.Incomplete {
		m.incomplete[resp.Provider]++
	} else {
		delete(m.incomplete, resp.Provider)
	}
}

// ExtendFilter appends a typed character to the filter.
func (m *Menu) ExtendFilter(r rune) {
	m.filter = append(m.filter, r)
}

// ShrinkFilter removes the last filter character. It returns false when
// there is nothing left to remove, which invalidates the session.
func (m *Menu) ShrinkFilter() bool {
	if len(m.filter) == 0 {
		return false
	}
	m.filter = m.filter[:len(m.filter)-1]
	return true
}

// Filter returns the accumulated filter string.
func (m *Menu) Filter() string {
	return string(m.filter)
}

// Filtered returns the candidates matching the current filter.
func (m *Menu) Filtered() []item.Item {
	pattern := string(m.filter)
	var out []item.Item
	for _, items := range m.providerItems {
		for _, it := range items {
			if fuzzyMatch(it.FilterText(), pattern) {
				out = append(out, it)
			}
		}
	}
	return out
}

// IsEmpty reports whether no candidate survives the current filter.
func (m *Menu) IsEmpty() bool {
	return len(m.Filtered()) == 0
}

// IncompleteCounter returns the extension counter for a provider and
// whether its last reply was incomplete.
func (m *Menu) IncompleteCounter(p item.ProviderID) (int8, bool) {
	n, ok := m.incomplete[p]
	return n, ok
}

// IncompleteProviders returns the providers still eligible for
// incremental re-querying under the given counter limit.
func (m *Menu) IncompleteProviders(limit int) []item.ProviderID {
	var out []item.ProviderID
	for p, n := range m.incomplete {
		if int(n) < limit {
			out = append(out, p)
		}
	}
	return out
}

// IncompleteListController owns the handles for incremental re-query
// waves. Restarting it supersedes the previous wave.
func (m *Menu) IncompleteListController() *task.Controller {
	return m.incompleteCtl
}

// SavePoint returns the snapshot taken when the session opened.
func (m *Menu) SavePoint() *editor.SavePoint { return m.savepoint }

// TriggerPos returns the cursor offset the session was opened at.
func (m *Menu) TriggerPos() buffer.ByteOffset { return m.triggerPos }

// MarkPreviewApplied records that speculative path-completion edits
// were made; clearing the session must then restore the savepoint.
func (m *Menu) MarkPreviewApplied() { m.previewApplied = true }

// PreviewApplied reports whether speculative edits were made.
func (m *Menu) PreviewApplied() bool { return m.previewApplied }

// fuzzyMatch reports whether text matches the pattern: a case-insensitive
// substring hit, or the pattern appearing as a subsequence of the text.
func fuzzyMatch(text, pattern string) bool {
	if pattern == "" {
		return true
	}

	textLower := strings.ToLower(text)
	patternLower := strings.ToLower(pattern)

	if strings.Contains(textLower, patternLower) {
		return true
	}

	textRunes := []rune(textLower)
	patternRunes := []rune(patternLower)

	ti := 0
	for pi := 0; pi < len(patternRunes); pi++ {
		for ti < len(textRunes) && textRunes[ti] != patternRunes[pi] {
			ti++
		}
		if ti >= len(textRunes) {
			return false
		}
		ti++
	}
	return true
}
