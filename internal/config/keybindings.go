// ABOUTME: Keybindings parser and loader for tour navigation keys
// ABOUTME: Supports ~/.tourguide/keybindings.json and .tourguide/keybindings.json

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const keybindingsName = "keybindings.json"

// KeyAction represents an action that can be bound to keys
type KeyAction string

const (
	ActionNext   KeyAction = "next"
	ActionPrev   KeyAction = "prev"
	ActionEnd    KeyAction = "end"
	ActionReplay KeyAction = "replay"
	ActionQuit   KeyAction = "quit"
)

// Actions lists every action in display order.
var Actions = []KeyAction{ActionNext, ActionPrev, ActionEnd, ActionReplay, ActionQuit}

// Keybindings maps actions to key names as Bubble Tea prints them
// ("ctrl+c", "enter", "n").
type Keybindings struct {
	Bindings map[KeyAction][]string `json:"-"`
}

// RawKeybindings is for JSON marshaling
type RawKeybindings map[string][]string

// NewKeybindings creates a new Keybindings with default bindings
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		Bindings: make(map[KeyAction][]string),
	}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionNext] = []string{"n", "enter", "right"}
	kb.Bindings[ActionPrev] = []string{"p", "left"}
	kb.Bindings[ActionEnd] = []string{"esc"}
	kb.Bindings[ActionReplay] = []string{"t"}
	kb.Bindings[ActionQuit] = []string{"q", "ctrl+c"}
}

// GetBindings returns the keys bound to action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	return kb.Bindings[action]
}

// LoadKeybindings reads overrides from a JSON file of action -> keys.
// Only the actions present in the file are set.
func LoadKeybindings(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw RawKeybindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	kb := &Keybindings{Bindings: make(map[KeyAction][]string, len(raw))}
	for name, keys := range raw {
		action := KeyAction(name)
		if !slices.Contains(Actions, action) {
			return nil, fmt.Errorf("%s: unknown action %q", path, name)
		}
		kb.Bindings[action] = keys
	}
	return kb, nil
}

// GlobalKeybindingsFile returns the global keybindings path under home.
func GlobalKeybindingsFile(home string) string {
	return filepath.Join(GlobalDirIn(home), keybindingsName)
}

// ProjectKeybindingsFile returns the project keybindings path.
func ProjectKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), keybindingsName)
}
