package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.lastKey = key

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "1":
		m.world.SetScreen(host.ScreenPopup)
		return m, nil
	case "2":
		m.world.SetScreen(host.ScreenMissionOffer)
		return m, nil
	case "3":
		m.world.SetScreen(host.ScreenRefitEditor)
		return m, nil
	case "4":
		m.world.SetScreen(host.ScreenContactBrowser)
		return m, nil
	case "down":
		m.dispatch(command.Command{Kind: command.Next})
	case "up":
		m.dispatch(command.Command{Kind: command.Previous})
	case "enter", "right":
		m.dispatch(command.Command{Kind: command.Activate})
	case "esc", "left":
		m.dispatch(command.Command{Kind: command.Back})
	case "tab":
		m.dispatch(command.Command{Kind: command.Detail})
	case "ctrl+l":
		m.dispatch(command.Command{Kind: command.ListAll})
	case "ctrl+r":
		m.dispatch(command.Command{Kind: command.Repeat})
	case "+", "=":
		m.dispatch(command.Command{Kind: command.Increment})
	case "-", "_":
		m.dispatch(command.Command{Kind: command.Decrement})
	case "ctrl+t":
		m.dispatch(command.Command{Kind: command.AssignTarget})
	default:
		if r := singleLetter(msg); r != 0 {
			m.dispatch(command.Command{Kind: command.Letter, Letter: r})
		}
	}
	return m, nil
}

func (m *Model) dispatch(cmd command.Command) {
	m.engine.Handle(cmd)
	m.syncForm()
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		value := m.form.Value()
		m.form.Blur()
		m.entering = false
		m.engine.ResolveInput(&value)
		m.syncForm()
		return m, nil
	case "esc":
		m.form.Blur()
		m.entering = false
		m.engine.ResolveInput(nil)
		m.syncForm()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// singleLetter reports the key's rune when it is a plain a-z press, 0
// otherwise.
func singleLetter(msg tea.KeyMsg) rune {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0
	}
	r := msg.Runes[0]
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0
	}
	return r
}
