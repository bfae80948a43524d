package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Mode      key.Binding
	Language  key.Binding
	UnitLeft  key.Binding
	UnitRight key.Binding
	Calculate key.Binding
	Clear     key.Binding
	Copy      key.Binding
	Quit      key.Binding
	Presets   []key.Binding
}

func newKeyMap(presetCount int) keyMap {
	km := keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Mode:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "mode")),
		Language:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		UnitLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "unit")),
		UnitRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "unit")),
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	for i := 1; i <= presetCount; i++ {
		k := fmt.Sprintf("alt+%d", i)
		km.Presets = append(km.Presets, key.NewBinding(key.WithKeys(k), key.WithHelp(k, "preset")))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Next, k.Mode, k.Language, k.Clear, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Calculate, k.Clear, k.Copy, k.Quit},
		{k.Next, k.Prev, k.UnitLeft, k.UnitRight},
		{k.Mode, k.Language},
		k.Presets,
	}
}
