package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.AutoCompletion {
		t.Error("expected auto completion enabled by default")
	}
	if cfg.CompletionTriggerLen != 2 {
		t.Errorf("CompletionTriggerLen = %d, want 2", cfg.CompletionTriggerLen)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"trigger len zero", func(c *Config) { c.CompletionTriggerLen = 0 }, ErrTriggerLenInvalid},
		{"negative requery limit", func(c *Config) { c.IncompleteRequeryLimit = -1 }, ErrRequeryLimitNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() on missing file = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggest.toml")
	content := "auto_completion = false\ncompletion_trigger_len = 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.AutoCompletion {
		t.Error("expected auto completion disabled")
	}
	if cfg.CompletionTriggerLen != 4 {
		t.Errorf("CompletionTriggerLen = %d, want 4", cfg.CompletionTriggerLen)
	}
	// Unspecified keys keep defaults.
	if !cfg.PathCompletion {
		t.Error("expected path completion to keep its default")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggest.toml")
	if err := os.WriteFile(path, []byte("completion_trigger_len = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suggest.toml")
	if err := os.WriteFile(path, []byte("completion_trigger_len = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Default())
	w, err := NewWatcher(path, store, zaptest.NewLogger(t).Sugar())
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("completion_trigger_len = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if store.Get().CompletionTriggerLen == 5 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("store not updated after reload: %+v", store.Get())
}

func TestWatcherKeepsLastGoodOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suggest.toml")
	if err := os.WriteFile(path, []byte("completion_trigger_len = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Default())
	w, err := NewWatcher(path, store, zaptest.NewLogger(t).Sugar())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("completion_trigger_len = }{garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(100 * time.Millisecond)
	if got := store.Get().CompletionTriggerLen; got != Default().CompletionTriggerLen {
		t.Errorf("store changed on invalid reload: trigger len = %d", got)
	}
}
