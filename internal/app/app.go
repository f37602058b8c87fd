// Package app assembles the demo: a simulated game host, the narration
// engine, the screen watcher and the terminal front-end.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/config"
	"github.com/kestrelaudio/screenvoice/internal/engine"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
	"github.com/kestrelaudio/screenvoice/internal/sim"
	"github.com/kestrelaudio/screenvoice/internal/speech"
	"github.com/kestrelaudio/screenvoice/internal/ui"
	"github.com/kestrelaudio/screenvoice/internal/watch"
)

// Run builds the full demo stack and blocks until the UI exits.
func Run(cfg config.Config) error {
	world := sim.NewWorld()
	transcript := speech.NewTranscript()

	eng := engine.New(world, world, world, engine.Queries{
		Mission:  world,
		Refit:    world,
		Contacts: world,
	}, transcript, func(screen host.Screen, status command.Status) {
		events.App.ModeDone(string(screen), status.String())
		world.SetScreen(host.ScreenNone)
	})

	watcher := watch.NewWatcher(world, cfg.App.PollInterval)
	defer func() {
		watcher.Stop()
		watcher.Wait()
	}()

	world.SetScreen(startScreen(cfg.App.StartScreen))

	model := ui.NewModel(world, eng, watcher, transcript, cfg.App.TranscriptLines, cfg.App.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func startScreen(name string) host.Screen {
	switch name {
	case "mission":
		return host.ScreenMissionOffer
	case "refit":
		return host.ScreenRefitEditor
	case "contacts":
		return host.ScreenContactBrowser
	default:
		return host.ScreenPopup
	}
}
