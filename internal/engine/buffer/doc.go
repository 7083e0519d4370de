// Package buffer provides the document text storage used by the
// completion orchestrator.
//
// The buffer exposes byte-offset addressed access plus the reverse rune
// iteration the trigger evaluator needs to inspect text immediately
// before the cursor. All methods are safe for concurrent readers; writes
// are serialized by the owning editor goroutine.
package buffer
