package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	platformcore "github.com/vovakirdan/dayfill/internal/core"
)

// GameKeyMap holds the board bindings. It doubles as the help.KeyMap
// shown under the board.
type GameKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Place  key.Binding
	Remove key.Binding
	Rotate key.Binding
	FlipH  key.Binding
	FlipV  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Undo   key.Binding
	Hint   key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Share  key.Binding
	Help   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultGameKeyMap returns the default board bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Place:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		Remove: key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "remove")),
		Rotate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		FlipH:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flip ↔")),
		FlipV:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "flip ↕")),
		Next:   key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next piece")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "N"), key.WithHelp("shift+tab", "prev piece")),
		Undo:   key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Hint:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Share:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "share code")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Rotate, k.Next, k.Undo, k.Hint, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Remove, k.Next, k.Prev},
		{k.Rotate, k.FlipH, k.FlipV, k.Undo},
		{k.Hint, k.Pause, k.Reset, k.Share},
		{k.Help, k.Back, k.Quit},
	}
}

// MapKey translates a key message to a board action.
// Returns ActionNone for unbound keys.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) platformcore.Action {
	bindings := []struct {
		binding key.Binding
		action  platformcore.Action
	}{
		{k.Quit, platformcore.ActionQuit},
		{k.Up, platformcore.ActionUp},
		{k.Down, platformcore.ActionDown},
		{k.Left, platformcore.ActionLeft},
		{k.Right, platformcore.ActionRight},
		{k.Place, platformcore.ActionPlace},
		{k.Remove, platformcore.ActionRemove},
		{k.Rotate, platformcore.ActionRotate},
		{k.FlipH, platformcore.ActionFlipH},
		{k.FlipV, platformcore.ActionFlipV},
		{k.Next, platformcore.ActionNextPiece},
		{k.Prev, platformcore.ActionPrevPiece},
		{k.Undo, platformcore.ActionUndo},
		{k.Hint, platformcore.ActionHint},
		{k.Pause, platformcore.ActionPause},
		{k.Reset, platformcore.ActionReset},
		{k.Share, platformcore.ActionShare},
		{k.Help, platformcore.ActionHelp},
		{k.Back, platformcore.ActionBack},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return platformcore.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
