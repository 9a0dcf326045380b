// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration using encoding/json; CLI overrides apply last

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Settings holds the merged configuration.
type Settings struct {
	// Density is cells per density-independent unit.
	Density float64 `json:"density,omitempty"`
	// FrameIntervalMS paces pointer and fade animations.
	FrameIntervalMS int    `json:"frame_interval_ms,omitempty"`
	Theme           string `json:"theme,omitempty"`
	Motion          string `json:"motion,omitempty"`
	Technique       string `json:"technique,omitempty"`
	LogLevel        string `json:"log_level,omitempty"`
	// Mouse toggles mouse capture; nil means on.
	Mouse *bool `json:"mouse,omitempty"`
}

// FrameInterval returns FrameIntervalMS as a duration, or zero when unset.
func (s *Settings) FrameInterval() time.Duration {
	return time.Duration(s.FrameIntervalMS) * time.Millisecond
}

// MouseEnabled reports whether mouse capture is on.
func (s *Settings) MouseEnabled() bool {
	return s.Mouse == nil || *s.Mouse
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return LoadWithHome(projectRoot, home, nil)
}

// LoadWithHome is Load with an explicit home directory and optional CLI
// overrides applied on top.
func LoadWithHome(projectRoot, home string, cli *Settings) (*Settings, error) {
	global, err := loadFile(filepath.Join(GlobalDirIn(home), settingsName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global settings: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}

	merged := merge(merge(global, project), cli)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.Density != 0 {
		result.Density = over.Density
	}
	if over.FrameIntervalMS != 0 {
		result.FrameIntervalMS = over.FrameIntervalMS
	}
	if over.Theme != "" {
		result.Theme = over.Theme
	}
	if over.Motion != "" {
		result.Motion = over.Motion
	}
	if over.Technique != "" {
		result.Technique = over.Technique
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.Mouse != nil {
		v := *over.Mouse
		result.Mouse = &v
	}

	return &result
}

// Validate rejects out-of-range numbers.
func (s *Settings) Validate() error {
	if s.Density < 0 {
		return fmt.Errorf("density %v: must not be negative", s.Density)
	}
	if s.FrameIntervalMS < 0 {
		return fmt.Errorf("frame_interval_ms %d: must not be negative", s.FrameIntervalMS)
	}
	return nil
}
