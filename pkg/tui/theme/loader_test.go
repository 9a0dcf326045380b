// ABOUTME: Tests for JSON theme loading and theme reference resolution
// ABOUTME: Covers partial palettes, invalid JSON, missing files, and builtin: refs

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_PartialPaletteFallsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.json")
	data := `{"name": "custom", "palette": {"scrim": "#101010", "pointer": "200"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q, want custom", th.Name)
	}
	if got := th.Palette.Scrim.Spec(); got != "#101010" {
		t.Errorf("Scrim = %q, want #101010", got)
	}
	if got := th.Palette.Pointer.Spec(); got != "200" {
		t.Errorf("Pointer = %q, want 200", got)
	}
	if got, want := th.Palette.TooltipBg, DefaultPalette().TooltipBg; got != want {
		t.Errorf("TooltipBg = %v, want default %v", got, want)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile("/nonexistent/theme.json"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{ref: "", want: "default"},
		{ref: "default", want: "default"},
		{ref: "builtin:light", want: "light"},
		{ref: "builtin:neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()
			th, err := Resolve(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Resolve(%q) succeeded, want error", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.ref, err)
			}
			if th.Name != tt.want {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.ref, th.Name, tt.want)
			}
		})
	}
}
