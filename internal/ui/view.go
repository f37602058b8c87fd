package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/kestrelaudio/screenvoice/internal/format/table"
	"github.com/kestrelaudio/screenvoice/internal/host"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("screenvoice"))
	b.WriteString("  ")
	b.WriteString(styles.Screen.Render(screenName(m.engine.Screen())))
	b.WriteString("\n\n")

	b.WriteString(m.transcriptView())
	b.WriteString("\n")

	if m.entering {
		b.WriteString(styles.FormPrompt.Render(m.form.Placeholder))
		b.WriteString("\n")
		b.WriteString(m.form.View())
		b.WriteString("\n")
	} else if m.verbose && m.lastKey != "" {
		b.WriteString(styles.Status.Render(fmt.Sprintf("key: %s", m.lastKey)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.footer()))
	return b.String()
}

// transcriptView renders the most recent utterances as a two column table,
// marking interrupting speech.
func (m *Model) transcriptView() string {
	lines := m.transcript.Tail(m.maxTranscript)
	if len(lines) == 0 {
		return styles.Status.Render("Nothing spoken yet. Press 1-4 to open a screen.") + "\n"
	}
	rows := make([][]string, len(lines))
	for i, line := range lines {
		marker := " "
		if line.Interrupt {
			marker = "!"
		}
		rows[i] = []string{marker, line.Text}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	var b strings.Builder
	for i, row := range formatted {
		if m.width > 0 {
			row = truncate.StringWithTail(row, uint(m.width), "…")
		}
		style := styles.Spoken
		if lines[i].Interrupt {
			style = styles.Interrupt
		}
		if i == len(formatted)-1 {
			style = styles.Screen
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) footer() string {
	if m.entering {
		return "enter: submit  esc: cancel input"
	}
	return "1-4: screens  ↑/↓: move  enter: activate  esc: back  tab: detail  a-z: jump  ctrl+c: quit"
}

func screenName(screen host.Screen) string {
	switch screen {
	case host.ScreenPopup:
		return "notification"
	case host.ScreenMissionOffer:
		return "mission offer"
	case host.ScreenRefitEditor:
		return "refit editor"
	case host.ScreenContactBrowser:
		return "contacts"
	default:
		return "no screen"
	}
}
