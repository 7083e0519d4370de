// Package editor holds the single-owner editor state the completion
// orchestrator observes and mutates: mode, documents, views, cursors,
// and savepoints.
//
// All state in this package is exclusively owned by the editor
// goroutine. Background tasks never receive references into it; they
// get immutable snapshots and communicate back through the dispatch
// queue.
package editor
