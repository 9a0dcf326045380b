// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Merges global and local configs, detects conflicts, and formats a help line

package keybindings

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"sort"
	"strings"

	"github.com/mauromedda/tourguide-go/internal/config"
	"github.com/mauromedda/tourguide-go/internal/log"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "ctrl+c" → ActionQuit
}

// New creates a Manager from global and local keybinding files.
// Local bindings override global ones. Missing files are ignored; broken
// ones are logged and skipped.
func New(globalPath, localPath string) *Manager {
	kb := config.NewKeybindings()
	for _, path := range []string{globalPath, localPath} {
		if path == "" {
			continue
		}
		over, err := config.LoadKeybindings(path)
		if err != nil {
			if !isNotExist(err) {
				log.Warn("keybindings: %v", err)
			}
			continue
		}
		mergeBindings(kb, over)
	}

	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionFor returns the action bound to key, or "" if unbound. key is a
// Bubble Tea key name as returned by tea.KeyMsg.String.
func (m *Manager) ActionFor(key string) config.KeyAction {
	return m.lookup[key]
}

// Bindings returns the keys bound to action.
func (m *Manager) Bindings(action config.KeyAction) []string {
	return m.bindings.GetBindings(action)
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for _, action := range config.Actions {
		for _, k := range m.bindings.GetBindings(action) {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Key < conflicts[j].Key })
	return conflicts
}

// Help returns a one-line summary using the first key of each action.
func (m *Manager) Help() string {
	var parts []string
	for _, action := range config.Actions {
		keys := m.bindings.GetBindings(action)
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keys[0]+" "+string(action))
	}
	return strings.Join(parts, " · ")
}

// FormatAll returns a table of every binding for --keys output.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	b.WriteString("Keybindings:\n\n")
	for _, action := range config.Actions {
		keys := m.bindings.GetBindings(action)
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-20s %s\n", strings.Join(keys, ", "), action)
	}
	return b.String()
}

// buildLookup walks actions in display order so that, for conflicting
// keys, the earlier action wins.
func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction, len(m.bindings.Bindings)*2)
	for _, action := range config.Actions {
		for _, k := range m.bindings.GetBindings(action) {
			if _, taken := m.lookup[k]; !taken {
				m.lookup[k] = action
			}
		}
	}
}

// mergeBindings overrides base bindings with overrides where present.
func mergeBindings(base, overrides *config.Keybindings) {
	maps.Copy(base.Bindings, overrides.Bindings)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
