package config

import (
	"os"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration loading.
var (
	ErrTriggerLenInvalid    = errors.New("completion_trigger_len must be at least 1")
	ErrRequeryLimitNegative = errors.New("incomplete_requery_limit must not be negative")
)

// Config holds the completion-related editor configuration.
type Config struct {
	// AutoCompletion enables automatic completion triggering.
	AutoCompletion bool `toml:"auto_completion"`

	// CompletionTriggerLen is the number of consecutive word characters
	// that must precede the cursor before an automatic trigger fires.
	CompletionTriggerLen int `toml:"completion_trigger_len"`

	// PathCompletion enables filesystem path completion.
	PathCompletion bool `toml:"path_completion"`

	// IncompleteRequeryLimit bounds how many times a provider that keeps
	// returning incomplete lists is re-queried while the user narrows
	// the filter.
	IncompleteRequeryLimit int `toml:"incomplete_requery_limit"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		AutoCompletion:         true,
		CompletionTriggerLen:   2,
		PathCompletion:         true,
		IncompleteRequeryLimit: 8,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.CompletionTriggerLen < 1 {
		return ErrTriggerLenInvalid
	}
	if c.IncompleteRequeryLimit < 0 {
		return ErrRequeryLimitNegative
	}
	return nil
}

// Load reads configuration from a TOML file, applying defaults for
// missing keys. A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "validating config file %s", path)
	}
	return cfg, nil
}

// Store holds the current configuration snapshot.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store initialized with the given configuration.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.Set(cfg)
	return s
}

// Get returns the current configuration snapshot.
func (s *Store) Get() Config {
	return *s.current.Load()
}

// Set atomically replaces the current configuration.
func (s *Store) Set(cfg Config) {
	s.current.Store(&cfg)
}
