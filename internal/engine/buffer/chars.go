package buffer

import "unicode"

// IsWordRune returns true if the rune is a word character: a letter,
// digit, or underscore. Word characters extend an identifier for the
// purposes of completion filtering and auto-trigger detection.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWordByte is the ASCII fast path of IsWordRune.
func IsWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
