// Package engine routes discrete navigation commands to the mode narrating
// the host's active screen. It owns no domain logic: screens become modes,
// commands become announcements, side effects go through the executor.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/flow"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/logging"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
	"github.com/kestrelaudio/screenvoice/internal/speech"
	"github.com/kestrelaudio/screenvoice/internal/tree"
)

// Mode narrates one active screen. Every mode answers the shared command
// set; Activate and Back may terminate it.
type Mode interface {
	Entry() string
	Next() string
	Previous() string
	Repeat() string
	Detail() string
	ListAll() string
	Letter(letter rune) string
	Activate() command.Outcome
	Back() command.Outcome
}

// Adjuster is implemented by modes with scalar items (cargo quantity).
type Adjuster interface {
	Increment() string
	Decrement() string
}

// Assigner is implemented by modes with an assign-target side channel.
type Assigner interface {
	AssignTarget() command.Outcome
}

// Queries bundles the per-flow domain queries the host provides.
type Queries struct {
	Mission  flow.MissionQuery
	Refit    flow.RefitQuery
	Contacts tree.ContactQuery
}

// DoneFunc tells the host a sub-mode finished and how.
type DoneFunc func(screen host.Screen, status command.Status)

// Engine is the single-threaded command router. All public methods run to
// completion before the next command is accepted; there is no internal
// concurrency.
type Engine struct {
	session  string
	provider host.SnapshotProvider
	exec     host.ActionExecutor
	ctxq     host.ContextQuery
	queries  Queries
	out      speech.Output
	onDone   DoneFunc

	input  host.InputSlot
	mode   Mode
	screen host.Screen
}

// New wires an engine against its host collaborators. onDone may be nil.
func New(provider host.SnapshotProvider, exec host.ActionExecutor, ctxq host.ContextQuery, queries Queries, out speech.Output, onDone DoneFunc) *Engine {
	e := &Engine{
		session:  uuid.NewString(),
		provider: provider,
		exec:     exec,
		ctxq:     ctxq,
		queries:  queries,
		out:      out,
		onDone:   onDone,
	}
	events.App.SessionStart(e.session)
	return e
}

// Session returns the trace correlation ID for this engine instance.
func (e *Engine) Session() string { return e.session }

// Screen returns the screen currently being narrated.
func (e *Engine) Screen() host.Screen { return e.screen }

// Active reports whether a mode is narrating.
func (e *Engine) Active() bool { return e.mode != nil }

// PendingPrompt surfaces the outstanding text-input request, if any.
func (e *Engine) PendingPrompt() (string, bool) {
	return e.input.Prompt(), e.input.Pending()
}

// ScreenAppeared rebuilds the narration model for a newly active screen. Any
// previous model is dropped: nothing survives across screen instances. The
// host's active context supplies the optional resume hint.
func (e *Engine) ScreenAppeared(screen host.Screen) {
	e.input.CancelPending()
	e.mode = nil
	e.screen = screen
	switch screen {
	case host.ScreenNone:
		return
	case host.ScreenPopup:
		snap, err := e.provider.Snapshot(screen)
		if err != nil {
			logging.Error(err)
			e.speak("Screen unavailable.", true)
			e.screen = host.ScreenNone
			return
		}
		e.mode = newPopupMode(snap)
	case host.ScreenMissionOffer:
		resume := ""
		if ctx := e.ctxq.ActiveContext(); ctx.FlowHint == "target" {
			resume = ctx.CurrentChoice
		}
		e.mode = flow.NewConfirmFlow(e.queries.Mission, e.exec, resume)
	case host.ScreenRefitEditor:
		e.mode = flow.NewEditorFlow(e.queries.Refit, e.exec, &e.input)
	case host.ScreenContactBrowser:
		e.mode = tree.NewNavigator(e.queries.Contacts, e.exec)
	default:
		e.speak("Screen not supported.", true)
		e.screen = host.ScreenNone
		return
	}
	e.speak(e.mode.Entry(), true)
}

// ScreenClosed drops the current model without a terminal announcement, for
// hosts that dismiss screens out from under the user.
func (e *Engine) ScreenClosed() {
	e.input.CancelPending()
	e.mode = nil
	e.screen = host.ScreenNone
}

// Handle executes one navigation command against the active mode and speaks
// the result. Commands arriving while a text-input continuation is pending
// are refused: activation semantics are suspended until the host resolves it.
func (e *Engine) Handle(cmd command.Command) {
	if e.mode == nil {
		e.speak("No accessible screen.", true)
		return
	}
	if e.input.Pending() {
		e.speak("Waiting for text input.", true)
		return
	}
	switch cmd.Kind {
	case command.Next:
		e.speak(e.mode.Next(), true)
	case command.Previous:
		e.speak(e.mode.Previous(), true)
	case command.Repeat:
		e.speak(e.mode.Repeat(), true)
	case command.Detail:
		e.speak(e.mode.Detail(), true)
	case command.ListAll:
		e.speak(e.mode.ListAll(), true)
	case command.Letter:
		e.speak(e.mode.Letter(cmd.Letter), true)
	case command.Activate:
		e.finish(e.mode.Activate())
	case command.Back:
		e.finish(e.mode.Back())
	case command.Increment:
		if adj, ok := e.mode.(Adjuster); ok {
			e.speak(adj.Increment(), true)
		} else {
			e.speak("Nothing to adjust.", true)
		}
	case command.Decrement:
		if adj, ok := e.mode.(Adjuster); ok {
			e.speak(adj.Decrement(), true)
		} else {
			e.speak("Nothing to adjust.", true)
		}
	case command.AssignTarget:
		if asg, ok := e.mode.(Assigner); ok {
			e.finish(asg.AssignTarget())
		} else {
			e.speak("No target to assign here.", true)
		}
	default:
		logging.Error(fmt.Errorf("unknown command kind %d", cmd.Kind))
	}
}

// ResolveInput delivers the host's answer to the pending continuation. The
// continuation resumes synchronously on this call.
func (e *Engine) ResolveInput(value *string) {
	if !e.input.Pending() {
		return
	}
	e.speak(e.input.Resolve(value), true)
}

func (e *Engine) finish(out command.Outcome) {
	e.speak(out.Text, true)
	if !out.Done() {
		return
	}
	screen := e.screen
	e.mode = nil
	e.screen = host.ScreenNone
	if e.onDone != nil {
		e.onDone(screen, out.Status)
	}
}

func (e *Engine) speak(text string, interrupt bool) {
	if text == "" {
		return
	}
	e.out.Speak(text, interrupt)
}
