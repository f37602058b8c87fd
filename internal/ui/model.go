// Package ui is the demo front-end: a Bubble Tea program that plays the host
// role, forwarding keys to the engine as navigation commands and rendering
// the spoken transcript.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelaudio/screenvoice/internal/engine"
	"github.com/kestrelaudio/screenvoice/internal/sim"
	"github.com/kestrelaudio/screenvoice/internal/speech"
	"github.com/kestrelaudio/screenvoice/internal/theme"
	"github.com/kestrelaudio/screenvoice/internal/watch"
)

var styles = theme.Default()

type watchMsg watch.Event

// Model drives the engine from keyboard input and shows what it spoke.
type Model struct {
	world      *sim.World
	engine     *engine.Engine
	watcher    *watch.Watcher
	transcript *speech.Transcript

	form     textinput.Model
	entering bool

	width         int
	height        int
	maxTranscript int
	verbose       bool
	lastKey       string
}

// NewModel wires the demo UI around an engine and its simulated world.
func NewModel(world *sim.World, eng *engine.Engine, watcher *watch.Watcher, transcript *speech.Transcript, maxTranscript int, verbose bool) *Model {
	form := textinput.New()
	form.CharLimit = 64
	return &Model{
		world:         world,
		engine:        eng,
		watcher:       watcher,
		transcript:    transcript,
		form:          form,
		maxTranscript: maxTranscript,
		verbose:       verbose,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.waitEvent()
}

// waitEvent blocks on the next watcher event.
func (m *Model) waitEvent() tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-m.watcher.Events()
		if !ok {
			return nil
		}
		return watchMsg(evt)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case watchMsg:
		m.engine.ScreenAppeared(msg.Screen)
		m.syncForm()
		return m, m.waitEvent()
	case tea.KeyMsg:
		if m.entering {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// syncForm opens or closes the text-input form to match the engine's pending
// continuation.
func (m *Model) syncForm() {
	prompt, pending := m.engine.PendingPrompt()
	if pending && !m.entering {
		m.form.SetValue("")
		m.form.Placeholder = prompt
		m.form.Focus()
		m.entering = true
	}
	if !pending && m.entering {
		m.form.Blur()
		m.entering = false
	}
}
