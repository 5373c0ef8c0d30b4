// Package config loads the host-configurable resource limits for a
// prontext engine instance from a TOML file, the way the teacher's
// main.go loads its own dbConfig from disk before wiring the application.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the limits a host may tune. Zero values are replaced with
// their documented defaults by Default and by Load when a key is absent.
type Config struct {
	// UndoDepth caps the number of snapshots kept on the editor's undo
	// stack. Must be >= 1.
	UndoDepth int `toml:"undo_depth"`
	// DefaultTopK is the suggestion count a host should request from
	// completion.Index.TopK when the user hasn't specified one.
	DefaultTopK int `toml:"default_top_k"`
	// EnableCtrlRRedo controls whether the host should route Ctrl+r to
	// the editor's redo command. Some hosts prefer to reserve Ctrl+r for
	// something else and drive redo through a menu instead.
	EnableCtrlRRedo bool `toml:"enable_ctrl_r_redo"`
}

const (
	defaultUndoDepth   = 200
	defaultTopK        = 10
	defaultCtrlRRedoOn = true
)

// Default returns the built-in configuration used when no file is given
// or a key is left unset.
func Default() Config {
	return Config{
		UndoDepth:       defaultUndoDepth,
		DefaultTopK:     defaultTopK,
		EnableCtrlRRedo: defaultCtrlRRedoOn,
	}
}

// Load reads and parses a TOML config file at path, starting from Default
// and overriding whatever keys are present.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.UndoDepth < 1 {
		cfg.UndoDepth = defaultUndoDepth
	}
	if cfg.DefaultTopK < 1 {
		cfg.DefaultTopK = defaultTopK
	}
	return cfg, nil
}
