// ABOUTME: Tests for settings loading, merging, env expansion, and validation
// ABOUTME: Verifies global -> project -> CLI precedence using temp home and project dirs

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWithHome_Empty(t *testing.T) {
	t.Parallel()

	s, err := LoadWithHome(t.TempDir(), t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadWithHome: %v", err)
	}
	if s == nil {
		t.Fatal("expected non-nil settings")
	}
	if !s.MouseEnabled() {
		t.Error("mouse should default to on")
	}
}

func TestLoadWithHome_Precedence(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	project := t.TempDir()
	writeFile(t, filepath.Join(home, ".tourguide", "settings.json"),
		`{"density": 0.2, "theme": "light", "motion": "click_only", "frame_interval_ms": 80}`)
	writeFile(t, filepath.Join(project, ".tourguide", "settings.json"),
		`{"theme": "builtin:monochrome", "mouse": false}`)

	s, err := LoadWithHome(project, home, &Settings{Motion: "swipe_only"})
	if err != nil {
		t.Fatalf("LoadWithHome: %v", err)
	}

	if s.Density != 0.2 {
		t.Errorf("Density = %v, want 0.2 from global", s.Density)
	}
	if s.Theme != "builtin:monochrome" {
		t.Errorf("Theme = %q, want project value", s.Theme)
	}
	if s.Motion != "swipe_only" {
		t.Errorf("Motion = %q, want CLI value", s.Motion)
	}
	if s.MouseEnabled() {
		t.Error("MouseEnabled = true, want project override false")
	}
	if got := s.FrameInterval(); got != 80*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 80ms", got)
	}
}

func TestLoadWithHome_InvalidJSON(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	writeFile(t, filepath.Join(project, ".tourguide", "settings.json"), `{"density":`)

	if _, err := LoadWithHome(project, t.TempDir(), nil); err == nil {
		t.Fatal("expected error for malformed project settings")
	}
}

func TestLoadWithHome_RejectsNegativeDensity(t *testing.T) {
	t.Parallel()

	if _, err := LoadWithHome(t.TempDir(), t.TempDir(), &Settings{Density: -1}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	got := merge(nil, nil)
	if got == nil || got.Theme != "" {
		t.Errorf("merge(nil, nil) = %+v, want empty settings", got)
	}
}

func TestMerge_MouseCopied(t *testing.T) {
	t.Parallel()

	off := false
	over := &Settings{Mouse: &off}
	got := merge(&Settings{}, over)
	off = true

	if got.MouseEnabled() {
		t.Error("merged mouse setting aliases the override")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("TG_THEMES", "/opt/themes")

	s := &Settings{Theme: "${TG_THEMES}/dark.json"}
	ResolveEnvVars(s)
	if s.Theme != "/opt/themes/dark.json" {
		t.Errorf("Theme = %q", s.Theme)
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	t.Setenv("TG_UNSET_FOR_TEST", "")

	if got := expandEnv("a${TG_UNSET_FOR_TEST}b"); got != "ab" {
		t.Errorf("expandEnv = %q, want ab", got)
	}
}
