package testutil

import tea "github.com/charmbracelet/bubbletea"

// Key builds the KeyMsg bubbletea delivers for a key string such as "j",
// "R", "ctrl+d" or "enter".
func Key(key string) tea.KeyMsg {
	for t, name := range specialKeys {
		if name == key {
			return tea.KeyMsg{Type: t}
		}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

var specialKeys = map[tea.KeyType]string{
	tea.KeyEnter:     "enter",
	tea.KeyEscape:    "esc",
	tea.KeyUp:        "up",
	tea.KeyDown:      "down",
	tea.KeyHome:      "home",
	tea.KeyEnd:       "end",
	tea.KeyCtrlC:     "ctrl+c",
	tea.KeyCtrlD:     "ctrl+d",
	tea.KeyCtrlU:     "ctrl+u",
	tea.KeyPgUp:      "pgup",
	tea.KeyPgDown:    "pgdown",
	tea.KeyTab:       "tab",
	tea.KeySpace:     " ",
	tea.KeyBackspace: "backspace",
}

// Press, Motion and Release build left-button mouse messages at row y.
func Press(y int) tea.MouseMsg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func Motion(y int) tea.MouseMsg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func Release(y int) tea.MouseMsg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// Wheel builds a wheel message; up scrolls towards the top.
func Wheel(up bool) tea.MouseMsg {
	b := tea.MouseButtonWheelDown
	if up {
		b = tea.MouseButtonWheelUp
	}
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: b}
}

// Collect runs cmd and returns every message it produces, flattening
// batches. Sequences are not expanded.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
