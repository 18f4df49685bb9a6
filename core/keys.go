package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func (r *KeyRegistry) Bindings() []KeyBinding {
	return slices.Clone(r.bindings)
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// DefaultBindings is the stock key map.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit"},
		{Keys: []string{"up", "k"}, Action: "scroll_up", Description: "scroll up"},
		{Keys: []string{"down", "j"}, Action: "scroll_down", Description: "scroll down"},
		{Keys: []string{"pgup", "b"}, Action: "page_up", Description: "page up"},
		{Keys: []string{"pgdown", "f", " "}, Action: "page_down", Description: "page down"},
		{Keys: []string{"home", "g"}, Action: "top", Description: "go to top"},
		{Keys: []string{"end"}, Action: "bottom", Description: "go to bottom"},
		{Keys: []string{"/"}, Action: "jump", Description: "jump to section"},
		{Keys: []string{"tab"}, Action: "next_section", Description: "next section"},
		{Keys: []string{"shift+tab"}, Action: "prev_section", Description: "previous section"},
	}
}
