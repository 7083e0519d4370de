//go:build windows

package completion

// isPathSeparator reports whether the byte just typed can start a path
// completion. Windows accepts both separators.
func isPathSeparator(b byte) bool {
	return b == '/' || b == '\\'
}
