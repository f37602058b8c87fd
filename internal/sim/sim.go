// Package sim is a small simulated game host. It implements every boundary
// contract the engine consumes, with a canned universe of missions, hulls,
// components and contacts, and backs both the demo binary and the
// integration tests.
package sim

import (
	"fmt"
	"sync"

	"github.com/kestrelaudio/screenvoice/internal/announce"
	"github.com/kestrelaudio/screenvoice/internal/flow"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/tree"
)

// Invocation is one recorded executor call.
type Invocation struct {
	ActionID string
	Args     []string
}

// World is the simulated game. The engine side is single-threaded; the mutex
// exists because the screen watcher polls ActiveScreen from its own
// goroutine.
type World struct {
	mu     sync.Mutex
	screen host.Screen
	hint   string
	choice string

	invocations []Invocation
	failActions map[string]bool

	popupReady bool
}

func NewWorld() *World {
	return &World{failActions: map[string]bool{}, popupReady: true}
}

// SetScreen switches the simulated game's visible screen.
func (w *World) SetScreen(screen host.Screen) {
	w.mu.Lock()
	w.screen = screen
	w.mu.Unlock()
}

// SetResume seeds the active-context flow hint for re-entry tests.
func (w *World) SetResume(hint, choice string) {
	w.mu.Lock()
	w.hint, w.choice = hint, choice
	w.mu.Unlock()
}

// SetPopupReady toggles whether the popup's reward button is interactable
// yet, simulating a host that enables elements asynchronously.
func (w *World) SetPopupReady(ready bool) {
	w.mu.Lock()
	w.popupReady = ready
	w.mu.Unlock()
}

// FailAction makes the executor report failure for one action ID.
func (w *World) FailAction(actionID string, fail bool) {
	w.mu.Lock()
	w.failActions[actionID] = fail
	w.mu.Unlock()
}

// Invocations returns every executor call so far.
func (w *World) Invocations() []Invocation {
	w.mu.Lock()
	defer w.mu.Unlock()
	dup := make([]Invocation, len(w.invocations))
	copy(dup, w.invocations)
	return dup
}

// LastInvocation returns the most recent executor call.
func (w *World) LastInvocation() (Invocation, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.invocations) == 0 {
		return Invocation{}, false
	}
	return w.invocations[len(w.invocations)-1], true
}

// ActiveContext implements host.ContextQuery.
func (w *World) ActiveContext() host.ActiveContext {
	w.mu.Lock()
	defer w.mu.Unlock()
	return host.ActiveContext{
		Screen:        w.screen,
		Primary:       missionName,
		Secondary:     "Kestrel",
		CurrentChoice: w.choice,
		FlowHint:      w.hint,
	}
}

// Invoke implements host.ActionExecutor.
func (w *World) Invoke(actionID string, args ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.failActions[actionID] {
		return fmt.Errorf("%s: host rejected the action", actionID)
	}
	w.invocations = append(w.invocations, Invocation{ActionID: actionID, Args: args})
	return nil
}

// element is one simulated popup element.
type element struct {
	desc  host.Descriptor
	err   error
	ready func() bool
	fire  func() error
}

func (e *element) Describe() (host.Descriptor, error) {
	if e.err != nil {
		return host.Descriptor{}, e.err
	}
	return e.desc, nil
}

func (e *element) Interactable() bool {
	if e.ready == nil {
		return true
	}
	return e.ready()
}

func (e *element) Invoke() error {
	if e.fire == nil {
		return nil
	}
	return e.fire()
}

// Snapshot implements host.SnapshotProvider. Only the popup screen carries
// raw elements; the flow and tree screens feed from the domain queries.
func (w *World) Snapshot(screen host.Screen) (host.Snapshot, error) {
	if screen != host.ScreenPopup {
		return host.Snapshot{}, fmt.Errorf("no element snapshot for screen %q", screen)
	}
	ready := func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.popupReady
	}
	return host.Snapshot{
		Screen: screen,
		Title:  "Delivery complete",
		Elements: []host.Element{
			&element{desc: host.Descriptor{
				Label:         "Cargo delivered to <b>Meridian Station</b>.",
				Detail:        "The station master thanks you for the timely delivery.",
				Informational: true,
			}},
			&element{desc: host.Descriptor{Label: "Claim reward", Tag: "OK"}, ready: ready,
				fire: func() error { return w.Invoke("popup:claim-reward") }},
			&element{err: fmt.Errorf("tooltip field not populated")},
			&element{desc: host.Descriptor{Label: "Close", Tag: "Close", Dismiss: true},
				fire: func() error { return w.Invoke("popup:close") }},
		},
	}, nil
}

const missionName = "Escort convoy to Vela"

// Mission implements flow.MissionQuery.
func (w *World) Mission() string { return missionName }

func (w *World) Responses() []flow.Response {
	return []flow.Response{
		{ID: "accept", Label: "Accept", Detail: "Take the escort contract.", NeedsTarget: true},
		{ID: "negotiate", Label: "Negotiate terms", Detail: "Ask for a better fee."},
		{ID: "decline", Label: "Decline", Detail: "Turn the contract down."},
	}
}

func (w *World) Allowed(responseID string) (bool, string) {
	if responseID == "negotiate" {
		return false, "The client refuses to negotiate."
	}
	return true, ""
}

func (w *World) Targets(responseID string) ([]announce.Ranked, error) {
	if responseID != "accept" {
		return nil, nil
	}
	return []announce.Ranked{
		{Ref: "ship:herald", Name: "Herald", Metric: 0.72},
		{Ref: "ship:auriga", Name: "Auriga", Metric: 0.84},
		{Ref: "ship:pelican", Name: "Pelican", Metric: 0.72},
	}, nil
}

// Templates implements flow.RefitQuery.
func (w *World) Templates() []flow.Template {
	drive := flow.Component{ID: "drive:ion", Name: "Ion drive", Kind: flow.KindDrive, Thrust: 40}
	return []flow.Template{
		{
			ID: "hull:courier", Name: "Courier hull", Detail: "Fast, lightly armed.", MaxCargo: 8,
			Slots: []flow.Slot{
				{ID: "w1", Name: "Bow mount", Kind: flow.KindWeapon},
				{ID: "d1", Name: "Drive bay", Kind: flow.KindDrive, Fitted: &drive},
				{ID: "p1", Name: "Reactor housing", Kind: flow.KindPowerPlant},
				{ID: "a1", Name: "Armor belt", Kind: flow.KindArmor},
				{ID: "m1", Name: "Utility bay", Kind: flow.KindModule},
			},
		},
		{
			ID: "hull:freighter", Name: "Freighter hull", Detail: "Slow, cavernous holds.", MaxCargo: 40,
			Slots: []flow.Slot{
				{ID: "w1", Name: "Turret ring", Kind: flow.KindWeapon},
				{ID: "d1", Name: "Drive bay", Kind: flow.KindDrive},
				{ID: "p1", Name: "Reactor housing", Kind: flow.KindPowerPlant},
				{ID: "a1", Name: "Armor belt", Kind: flow.KindArmor},
				{ID: "m1", Name: "Utility bay", Kind: flow.KindModule},
				{ID: "m2", Name: "Aft bay", Kind: flow.KindModule},
			},
		},
	}
}

func (w *World) Components(kind flow.ComponentKind) ([]flow.Component, error) {
	switch kind {
	case flow.KindWeapon:
		return []flow.Component{
			{ID: "wpn:pulse", Name: "Pulse laser", Kind: kind, Damage: 12},
			{ID: "wpn:rail", Name: "Rail cannon", Kind: kind, Damage: 30},
		}, nil
	case flow.KindDrive:
		return []flow.Component{
			{ID: "drive:ion", Name: "Ion drive", Kind: kind, Thrust: 40},
			{ID: "drive:fusion", Name: "Fusion torch", Kind: kind, Thrust: 90},
		}, nil
	case flow.KindPowerPlant:
		return []flow.Component{
			{ID: "pp:fission", Name: "Fission core", Kind: kind, Output: 60},
			{ID: "pp:solar", Name: "Solar array", Kind: kind, Output: 25},
		}, nil
	case flow.KindArmor:
		return []flow.Component{
			{ID: "arm:composite", Name: "Composite plating", Kind: kind, Rating: 8},
			{ID: "arm:ablative", Name: "Ablative coating", Kind: kind, Rating: 5},
		}, nil
	case flow.KindModule:
		return []flow.Component{
			{ID: "mod:scanner", Name: "Deep scanner", Kind: kind, Effect: "reveals cargo manifests"},
			{ID: "mod:shield", Name: "Shield booster", Kind: kind, Effect: "raises shield regen"},
		}, nil
	}
	return nil, fmt.Errorf("unknown component kind %v", kind)
}

// Contacts implements tree.ContactQuery.
func (w *World) Contacts() []tree.Contact {
	return []tree.Contact{
		{ID: "org:orion", Name: "Orion Corp"},
		{ID: "org:zenith", Name: "Zenith Ltd"},
	}
}

func (w *World) Sections(contactID string) ([]tree.Section, error) {
	switch contactID {
	case "org:orion":
		return []tree.Section{
			{Name: "Summary", Items: []tree.Item{
				{Label: "Standing: trusted"},
				{Label: "Success chance: 81 percent"},
			}},
			{Name: "Description", Items: []tree.Item{
				{Label: "A mining conglomerate with holdings across the Vela reach."},
			}},
			{Name: "Info", Items: []tree.Item{
				{Label: "Headquarters: Meridian Station"},
				{Label: "Owner: Orion family trust"},
			}},
			{Name: "Eligibility", Items: []tree.Item{
				{Label: "Charter requires standing of neutral or better"},
				{Label: "You qualify"},
			}},
			{Name: "Actions", Items: []tree.Item{
				{Label: "Set as mission target", ActionID: "contact:assign-target"},
			}},
		}, nil
	case "org:zenith":
		return []tree.Section{
			{Name: "Summary", Items: []tree.Item{
				{Label: "Standing: neutral"},
				{Label: "Success chance: 54 percent"},
			}},
			{Name: "Description", Items: []tree.Item{
				{Label: "A shipping cartel that keeps its books closed."},
			}},
			{Name: "Info", Items: []tree.Item{
				{Label: "Headquarters: Zenith Yard"},
			}},
			{Name: "Eligibility", Items: []tree.Item{
				{Label: "Charter requires standing of trusted"},
				{Label: "You do not qualify"},
			}},
			{Name: "Actions", Items: []tree.Item{
				{Label: "Set as mission target", ActionID: "contact:assign-target"},
			}},
		}, nil
	}
	return nil, fmt.Errorf("unknown contact %q", contactID)
}
