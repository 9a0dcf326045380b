// ABOUTME: Built-in themes: default, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Scrim:     NewColor("252"),
			ScrimText: NewColor("246"),

			TooltipBg:     NewColor("231"),
			TooltipFg:     NewColor("235"),
			TooltipTitle:  NewColor("25"),
			TooltipBorder: NewColor("31"),
			Shadow:        NewColor("248"),

			Pointer:    NewColor("166"),
			Button:     NewColor("25"),
			ButtonText: NewColor("231"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Scrim:     NewColor("0"),
			ScrimText: NewColor("8"),

			TooltipBg:     NewColor("15"),
			TooltipFg:     NewColor("0"),
			TooltipTitle:  NewColor("0"),
			TooltipBorder: NewColor("15"),
			Shadow:        NewColor("8"),

			Pointer:    NewColor("15"),
			Button:     NewColor("15"),
			ButtonText: NewColor("0"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "light", "monochrome"}
}
