// ABOUTME: JSON theme file loading with default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette; "builtin:<name>" picks a built-in

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// jsonPalette is the on-disk form of a Palette; field names mirror
// Palette so convertPalette can map them by reflection.
type jsonPalette struct {
	Scrim     string `json:"scrim"`
	ScrimText string `json:"scrim_text"`

	TooltipBg     string `json:"tooltip_bg"`
	TooltipFg     string `json:"tooltip_fg"`
	TooltipTitle  string `json:"tooltip_title"`
	TooltipBorder string `json:"tooltip_border"`
	Shadow        string `json:"shadow"`

	Pointer    string `json:"pointer"`
	Button     string `json:"button"`
	ButtonText string `json:"button_text"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// Resolve returns the theme named by ref: "" or "default" for the default
// theme, "builtin:<name>" for a built-in, or a path to a JSON theme file.
func Resolve(ref string) (*Theme, error) {
	switch {
	case ref == "" || ref == "default":
		return Builtin("default"), nil
	case strings.HasPrefix(ref, "builtin:"):
		name := strings.TrimPrefix(ref, "builtin:")
		if th := Builtin(name); th != nil {
			return th, nil
		}
		return nil, fmt.Errorf("unknown builtin theme %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
	default:
		return LoadFile(ref)
	}
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	return &Theme{
		Name:    jt.Name,
		Palette: convertPalette(jt.Palette, DefaultPalette()),
	}, nil
}

// convertPalette overlays the non-empty fields of jp onto base.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		spec := jpv.Field(i).String()
		if spec == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(spec)))
		}
	}

	return p
}
