// Package host declares the boundary contracts between the narration engine
// and the application it narrates. The engine only ever sees the host through
// these interfaces: it reads snapshots, asks domain queries, invokes actions,
// and never reaches into host internals.
package host

// Screen identifies a host screen kind the engine knows how to narrate.
type Screen string

const (
	ScreenNone           Screen = ""
	ScreenPopup          Screen = "popup"
	ScreenMissionOffer   Screen = "mission-offer"
	ScreenRefitEditor    Screen = "refit-editor"
	ScreenContactBrowser Screen = "contact-browser"
)

// Descriptor is the speakable description of a single element.
type Descriptor struct {
	Label         string
	Detail        string
	Tag           string // locale-independent action tag, e.g. "Close"
	Informational bool   // navigable but never activates a host action
	Dismiss       bool   // generic close/exit fallback, ordered last
}

// Element is a live, non-owned reference to one visible host element.
// Describe goes back to the host and can fail per element; Interactable is
// checked at activation time because the host may enable elements
// asynchronously after they become visible.
type Element interface {
	Describe() (Descriptor, error)
	Interactable() bool
	Invoke() error
}

// Snapshot is the host's view of a screen at one instant. It must be
// re-queried on every model build, never cached.
type Snapshot struct {
	Screen   Screen
	Title    string
	Elements []Element
}

// SnapshotProvider surfaces the currently visible elements of a screen.
type SnapshotProvider interface {
	Snapshot(screen Screen) (Snapshot, error)
}

// ActionExecutor performs every externally visible side effect. A user-level
// activation maps to at most one Invoke call.
type ActionExecutor interface {
	Invoke(actionID string, args ...string) error
}

// ActiveContext is a read-only description of what the host is showing.
// It replaces the legacy reflective access into host-private fields.
type ActiveContext struct {
	Screen        Screen
	Primary       string // e.g. the mission or contact in focus
	Secondary     string // e.g. the currently boarded ship
	CurrentChoice string
	FlowHint      string // resume hint, e.g. "target" to re-enter at target selection
}

// ContextQuery is implemented by the host.
type ContextQuery interface {
	ActiveContext() ActiveContext
}
