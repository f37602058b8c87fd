package flow

import (
	"fmt"

	"github.com/kestrelaudio/screenvoice/internal/announce"
	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/logging"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
	"github.com/kestrelaudio/screenvoice/internal/options"
)

// Response is one way to answer a mission offer.
type Response struct {
	ID          string
	Label       string
	Detail      string
	NeedsTarget bool
}

// MissionQuery answers mission-offer questions. The flow treats every result
// as an opaque display value; it only orders, filters and renders them.
type MissionQuery interface {
	Mission() string
	Responses() []Response
	// Allowed reports whether the giver accepts this response, with a
	// speakable reason when not.
	Allowed(responseID string) (bool, string)
	// Targets lists qualifying ships for a response, unordered.
	Targets(responseID string) ([]announce.Ranked, error)
}

// ConfirmState enumerates the mission response steps.
type ConfirmState int

const (
	StateRespond ConfirmState = iota
	StateTarget
	StateConfirm
)

func (s ConfirmState) String() string {
	switch s {
	case StateRespond:
		return "respond"
	case StateTarget:
		return "target"
	case StateConfirm:
		return "confirm"
	}
	return "unknown"
}

// ConfirmFlow walks a mission offer: choose a response, choose a qualifying
// ship when the response needs one, then confirm or cancel.
type ConfirmFlow struct {
	query     MissionQuery
	exec      host.ActionExecutor
	state     ConfirmState
	seq       *options.Sequence
	responses []Response
	choice    *Response
	targets   []announce.Ranked
	target    *announce.Ranked
}

// NewConfirmFlow builds the flow at the response step. resumeChoice re-enters
// at the target step when the host is already showing that sub-panel; it is
// ignored when it names no known target-requiring response.
func NewConfirmFlow(query MissionQuery, exec host.ActionExecutor, resumeChoice string) *ConfirmFlow {
	f := &ConfirmFlow{query: query, exec: exec}
	f.enterRespond()
	if resumeChoice == "" {
		return f
	}
	for i := range f.responses {
		r := f.responses[i]
		if r.ID == resumeChoice && r.NeedsTarget {
			if ok, _ := query.Allowed(r.ID); !ok {
				break
			}
			if f.loadTargets(r) {
				f.choice = &r
				f.enterTarget()
			}
			break
		}
	}
	return f
}

func (f *ConfirmFlow) State() ConfirmState { return f.state }

func (f *ConfirmFlow) enterRespond() {
	f.transition(StateRespond)
	f.choice = nil
	f.target = nil
	f.responses = f.query.Responses()
	opts := make([]options.Option, 0, len(f.responses))
	for _, r := range f.responses {
		opts = append(opts, options.Option{Label: r.Label, Detail: r.Detail, Tag: r.ID, Activatable: true})
	}
	f.seq = options.New("mission:respond", opts)
}

func (f *ConfirmFlow) enterTarget() {
	f.transition(StateTarget)
	f.target = nil
	opts := make([]options.Option, 0, len(f.targets))
	for _, t := range f.targets {
		opts = append(opts, options.Option{
			Label:       t.Name,
			Tag:         t.Ref,
			Metric:      announce.Percent(t.Metric),
			Activatable: true,
		})
	}
	f.seq = options.New("mission:target", opts)
}

func (f *ConfirmFlow) enterConfirm() {
	f.transition(StateConfirm)
	f.seq = options.New("mission:confirm", []options.Option{
		{Label: "Confirm", Tag: "OK", Activatable: true},
		{Label: "Cancel", Tag: "Cancel", Activatable: true},
	})
}

func (f *ConfirmFlow) transition(to ConfirmState) {
	events.Flow.Transition("mission", f.state.String(), to.String())
	f.state = to
}

// loadTargets queries and ranks qualifying ships. Reports whether any exist;
// a failed query reads as none.
func (f *ConfirmFlow) loadTargets(r Response) bool {
	targets, err := f.query.Targets(r.ID)
	if err != nil {
		logging.Error(err)
		f.targets = nil
		return false
	}
	announce.SortRanked(targets)
	f.targets = targets
	return len(targets) > 0
}

// Entry summarizes the current step for screen activation.
func (f *ConfirmFlow) Entry() string {
	first := ""
	if opt, ok := f.seq.Current(); ok {
		first = opt.Label
	}
	switch f.state {
	case StateTarget:
		return announce.Entry("Choose a ship", f.seq.Count(), first)
	case StateConfirm:
		return announce.Entry("Confirm "+f.choiceLabel(), f.seq.Count(), first)
	}
	return announce.Entry("Mission offer: "+f.query.Mission(), f.seq.Count(), first)
}

func (f *ConfirmFlow) choiceLabel() string {
	if f.choice == nil {
		return "response"
	}
	return f.choice.Label
}

func (f *ConfirmFlow) Next() string {
	f.seq.Next()
	return f.Repeat()
}

func (f *ConfirmFlow) Previous() string {
	f.seq.Previous()
	return f.Repeat()
}

// Repeat speaks the current step without moving.
func (f *ConfirmFlow) Repeat() string {
	opt, ok := f.seq.Current()
	if !ok {
		return "No options."
	}
	return announce.Step(f.seq.Index(), f.seq.Count(), opt.Label, opt.Metric)
}

func (f *ConfirmFlow) Detail() string {
	opt, ok := f.seq.Current()
	if !ok {
		return "No options."
	}
	if opt.Metric != "" {
		return announce.Detail(opt.Label, "success chance "+opt.Metric)
	}
	return announce.Detail(opt.Label, opt.Detail)
}

func (f *ConfirmFlow) ListAll() string {
	labels := make([]string, 0, f.seq.Count())
	for _, opt := range f.seq.Options() {
		labels = append(labels, opt.Label)
	}
	switch f.state {
	case StateTarget:
		return announce.ListAll("Ships", labels)
	case StateConfirm:
		return announce.ListAll("Choices", labels)
	}
	return announce.ListAll("Responses", labels)
}

func (f *ConfirmFlow) Letter(letter rune) string {
	idx := f.seq.FindNextByLetter(letter)
	if idx < 0 {
		return fmt.Sprintf("No item starting with %c.", letter)
	}
	f.seq.SetIndex(idx)
	return f.Repeat()
}

// Activate interprets the current option according to the state transition
// table in one place.
func (f *ConfirmFlow) Activate() command.Outcome {
	switch f.state {
	case StateRespond:
		return f.activateResponse()
	case StateTarget:
		return f.activateTarget()
	case StateConfirm:
		return f.activateConfirm()
	}
	return active("")
}

func (f *ConfirmFlow) activateResponse() command.Outcome {
	idx := f.seq.Index()
	if idx < 0 || idx >= len(f.responses) {
		return active("Nothing to activate.")
	}
	r := f.responses[idx]
	if ok, reason := f.query.Allowed(r.ID); !ok {
		if reason == "" {
			reason = r.Label + " is unavailable."
		}
		return active(reason)
	}
	if !r.NeedsTarget {
		f.choice = &r
		f.enterConfirm()
		return active(f.Entry())
	}
	if !f.loadTargets(r) {
		return active("No valid targets for " + r.Label + ".")
	}
	f.choice = &r
	f.enterTarget()
	return active(f.Entry())
}

func (f *ConfirmFlow) activateTarget() command.Outcome {
	idx := f.seq.Index()
	if idx < 0 || idx >= len(f.targets) {
		return active("Nothing to activate.")
	}
	t := f.targets[idx]
	f.target = &t
	f.enterConfirm()
	return active(f.Entry())
}

func (f *ConfirmFlow) activateConfirm() command.Outcome {
	opt, ok := f.seq.Current()
	if !ok {
		return active("Nothing to activate.")
	}
	if opt.Tag == "OK" {
		args := []string{f.query.Mission(), f.choice.ID}
		if f.target != nil {
			args = append(args, f.target.Ref)
		}
		if err := f.exec.Invoke("mission:respond", args...); err != nil {
			logging.Error(err)
			events.Flow.ActionError("mission", "mission:respond", err)
			return active("Action failed.")
		}
		events.Flow.Terminated("mission", "committed")
		return committed(f.choiceLabel() + " confirmed.")
	}
	return f.cancelConfirm()
}

// cancelConfirm serves both the Cancel option and Back from the confirm step.
func (f *ConfirmFlow) cancelConfirm() command.Outcome {
	if err := f.exec.Invoke("mission:cancel", f.query.Mission()); err != nil {
		logging.Error(err)
		events.Flow.ActionError("mission", "mission:cancel", err)
	}
	if f.choice != nil && f.choice.NeedsTarget {
		f.enterTarget()
	} else {
		f.enterRespond()
	}
	return active(f.Entry())
}

// Back walks one step out; from the response step it terminates the flow.
func (f *ConfirmFlow) Back() command.Outcome {
	switch f.state {
	case StateTarget:
		f.enterRespond()
		return active(f.Entry())
	case StateConfirm:
		return f.cancelConfirm()
	}
	events.Flow.Terminated("mission", "cancelled")
	return cancelled("Mission offer closed.")
}
