//go:build !windows

package completion

// isPathSeparator reports whether the byte just typed can start a path
// completion.
func isPathSeparator(b byte) bool {
	return b == '/'
}
