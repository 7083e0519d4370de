// Package config provides completion configuration with TOML file
// loading and live reload.
//
// Configuration is published as an immutable snapshot behind an atomic
// pointer so that hot paths (the trigger evaluator runs on every
// keystroke) read it without locking.
package config
