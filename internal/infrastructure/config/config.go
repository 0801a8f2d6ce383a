// Package config resolves CLI settings from defaults, the saved config
// file and MAYAFBX_* environment variables, in that order.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Transport modes for reaching Maya.
const (
	// ModeCommandPort talks to a running GUI or batch session over the
	// socket opened with the commandPort MEL command.
	ModeCommandPort = "commandport"

	// ModePrompt spawns a fresh `maya -prompt` interpreter per session.
	ModePrompt = "prompt"
)

// Settings carries everything the CLI needs to reach a host.
type Settings struct {
	// Host is the command port address, for example "127.0.0.1:7001".
	Host string

	// Mode selects the transport, ModeCommandPort or ModePrompt.
	Mode string

	// MayaBin is the Maya binary started in prompt mode.
	MayaBin string

	// Timeout bounds a single command round trip.
	Timeout time.Duration

	// Restore reapplies the plug-in state captured before an export or
	// import once it finishes.
	Restore bool

	// PresetDir is where named option presets are stored.
	PresetDir string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	home, _ := os.UserHomeDir()
	return Settings{
		Host:      "127.0.0.1:7001",
		Mode:      ModeCommandPort,
		MayaBin:   "maya",
		Timeout:   5 * time.Minute,
		Restore:   true,
		PresetDir: filepath.Join(home, ".config", "mayafbx", "presets"),
	}
}

// DefaultPath returns the saved config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mayafbx", "config.json")
}

// Load resolves settings from the default config file location and the
// environment.
func Load() (Settings, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom resolves settings starting from the given config file. A
// missing file is fine; a present but unreadable one is not.
func LoadFrom(path string) (Settings, error) {
	s := Defaults()
	if err := s.applyFile(path); err != nil {
		return s, err
	}
	s.applyEnv()
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the settings to the given config file path, creating the
// directory if needed.
func Save(path string, s Settings) error {
	timeout := s.Timeout.String()
	fc := fileConfig{
		Host:      &s.Host,
		Mode:      &s.Mode,
		MayaBin:   &s.MayaBin,
		Timeout:   &timeout,
		Restore:   &s.Restore,
		PresetDir: &s.PresetDir,
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects settings no transport could work with.
func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeCommandPort, ModePrompt:
	default:
		return fmt.Errorf("unknown mode %q, want %q or %q", s.Mode, ModeCommandPort, ModePrompt)
	}
	if s.Host == "" {
		return fmt.Errorf("host address required")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	return nil
}

// fileConfig mirrors the JSON config file. Pointers keep an absent key
// from clobbering a default, false included.
type fileConfig struct {
	Host      *string `json:"host"`
	Mode      *string `json:"mode"`
	MayaBin   *string `json:"maya_bin"`
	Timeout   *string `json:"timeout"`
	Restore   *bool   `json:"restore"`
	PresetDir *string `json:"preset_dir"`
}

func (s *Settings) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if fc.Host != nil {
		s.Host = *fc.Host
	}
	if fc.Mode != nil {
		s.Mode = *fc.Mode
	}
	if fc.MayaBin != nil {
		s.MayaBin = *fc.MayaBin
	}
	if fc.Timeout != nil {
		if d, err := time.ParseDuration(*fc.Timeout); err == nil {
			s.Timeout = d
		}
	}
	if fc.Restore != nil {
		s.Restore = *fc.Restore
	}
	if fc.PresetDir != nil {
		s.PresetDir = *fc.PresetDir
	}
	return nil
}

// applyEnv overlays MAYAFBX_* variables. Unparseable values are ignored,
// matching how the config file is read.
func (s *Settings) applyEnv() {
	if v := os.Getenv("MAYAFBX_HOST"); v != "" {
		s.Host = v
	}
	if v := os.Getenv("MAYAFBX_MODE"); v != "" {
		s.Mode = v
	}
	if v := os.Getenv("MAYAFBX_MAYA_BIN"); v != "" {
		s.MayaBin = v
	}
	if v := os.Getenv("MAYAFBX_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			s.Timeout = d
		}
	}
	if v := os.Getenv("MAYAFBX_RESTORE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Restore = b
		}
	}
	if v := os.Getenv("MAYAFBX_PRESET_DIR"); v != "" {
		s.PresetDir = v
	}
}
