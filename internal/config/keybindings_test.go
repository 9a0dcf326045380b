// ABOUTME: Tests for keybinding defaults and JSON override loading
// ABOUTME: Unknown action names in a file are rejected

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNewKeybindings_EveryActionBound(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	for _, a := range Actions {
		if len(kb.GetBindings(a)) == 0 {
			t.Errorf("action %q has no default keys", a)
		}
	}
}

func TestLoadKeybindings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"prev": ["h", "up"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	kb, err := LoadKeybindings(good)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if got := kb.GetBindings(ActionPrev); !slices.Equal(got, []string{"h", "up"}) {
		t.Errorf("prev = %v, want [h up]", got)
	}
	if got := kb.GetBindings(ActionNext); got != nil {
		t.Errorf("next = %v, want nil for an action the file leaves out", got)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"jump": ["j"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeybindings(bad); err == nil {
		t.Error("expected error for unknown action")
	}

	if _, err := LoadKeybindings(filepath.Join(dir, "none.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestKeybindingsPaths(t *testing.T) {
	t.Parallel()

	if got, want := GlobalKeybindingsFile("/home/u"), filepath.Join("/home/u", ".tourguide", "keybindings.json"); got != want {
		t.Errorf("GlobalKeybindingsFile = %q, want %q", got, want)
	}
	if got, want := ProjectKeybindingsFile("/p"), filepath.Join("/p", ".tourguide", "keybindings.json"); got != want {
		t.Errorf("ProjectKeybindingsFile = %q, want %q", got, want)
	}
}
