package buffer

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// ByteOffset represents a byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Buffer holds UTF-8 document text addressed by byte offsets.
// All methods are thread-safe.
type Buffer struct {
	mu   sync.RWMutex
	text string
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer with initial content.
func FromString(s string) *Buffer {
	return &Buffer{text: s}
}

// Len returns the length of the buffer in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Slice returns the text in [start, end).
func (b *Buffer) Slice(start, end ByteOffset) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if start < 0 || end > ByteOffset(len(b.text)) || start > end {
		return "", ErrRangeInvalid
	}
	return b.text[start:end], nil
}

// Insert inserts text at the given offset and returns the new buffer length.
func (b *Buffer) Insert(at ByteOffset, s string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if at < 0 || at > ByteOffset(len(b.text)) {
		return 0, ErrOffsetOutOfRange
	}
	var sb strings.Builder
	sb.Grow(len(b.text) + len(s))
	sb.WriteString(b.text[:at])
	sb.WriteString(s)
	sb.WriteString(b.text[at:])
	b.text = sb.String()
	return ByteOffset(len(b.text)), nil
}

// Delete removes the text in [start, end) and returns the new buffer length.
func (b *Buffer) Delete(start, end ByteOffset) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start < 0 || end > ByteOffset(len(b.text)) || start > end {
		return 0, ErrRangeInvalid
	}
	b.text = b.text[:start] + b.text[end:]
	return ByteOffset(len(b.text)), nil
}

// Replace substitutes the text in [start, end) with s.
func (b *Buffer) Replace(start, end ByteOffset, s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start < 0 || end > ByteOffset(len(b.text)) || start > end {
		return ErrRangeInvalid
	}
	b.text = b.text[:start] + s + b.text[end:]
	return nil
}

// EndsWith reports whether the text ending at offset has the given suffix.
func (b *Buffer) EndsWith(suffix string, at ByteOffset) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if at < 0 || at > ByteOffset(len(b.text)) {
		return false
	}
	return strings.HasSuffix(b.text[:at], suffix)
}

// LastByteBefore returns the byte immediately preceding the offset.
// The second return value is false when the offset is at the start of
// the buffer or out of range.
func (b *Buffer) LastByteBefore(at ByteOffset) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if at <= 0 || at > ByteOffset(len(b.text)) {
		return 0, false
	}
	return b.text[at-1], true
}

// RunesBefore returns up to n runes immediately preceding the offset,
// nearest rune first.
func (b *Buffer) RunesBefore(at ByteOffset, n int) []rune {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if at < 0 || at > ByteOffset(len(b.text)) {
		return nil
	}
	runes := make([]rune, 0, n)
	pos := int(at)
	for len(runes) < n && pos > 0 {
		r, size := utf8.DecodeLastRuneInString(b.text[:pos])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		runes = append(runes, r)
		pos -= size
	}
	return runes
}

// WordStart returns the offset where the word ending at the cursor begins.
// When the byte before the cursor is not a word character the cursor
// offset itself is returned.
func (b *Buffer) WordStart(at ByteOffset) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if at < 0 || at > ByteOffset(len(b.text)) {
		return at
	}
	pos := int(at)
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(b.text[:pos])
		if !IsWordRune(r) {
			break
		}
		pos -= size
	}
	return ByteOffset(pos)
}
