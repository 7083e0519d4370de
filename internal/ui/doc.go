// Package ui owns the completion popup and the compositor surface it is
// placed on.
//
// Everything here is mutated only on the editor goroutine, via closures
// marshaled through the dispatch queue. Background provider tasks never
// hold references into this package.
package ui
