package options

import (
	"strings"
	"unicode"

	"github.com/kestrelaudio/screenvoice/internal/logging"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
)

// Sequence is an ordered option list with a cursor. The cursor is -1 exactly
// when the sequence is empty, otherwise always in [0, Count).
type Sequence struct {
	screen string
	opts   []Option
	cursor int
}

// New builds a sequence over the provided options. The cursor starts on the
// first option, or at -1 for an empty list.
func New(screen string, opts []Option) *Sequence {
	s := &Sequence{screen: screen, opts: opts, cursor: -1}
	if len(opts) > 0 {
		s.cursor = 0
	}
	return s
}

func (s *Sequence) Screen() string { return s.screen }
func (s *Sequence) Count() int     { return len(s.opts) }
func (s *Sequence) Index() int     { return s.cursor }

// Current returns the option under the cursor.
func (s *Sequence) Current() (Option, bool) {
	if s.cursor < 0 || s.cursor >= len(s.opts) {
		return Option{}, false
	}
	return s.opts[s.cursor], true
}

// At returns the option at index i.
func (s *Sequence) At(i int) (Option, bool) {
	if i < 0 || i >= len(s.opts) {
		return Option{}, false
	}
	return s.opts[i], true
}

// Options returns a copy of the underlying options in order.
func (s *Sequence) Options() []Option {
	dup := make([]Option, len(s.opts))
	copy(dup, s.opts)
	return dup
}

// SetIndex moves the cursor to i when in bounds.
func (s *Sequence) SetIndex(i int) bool {
	if i < 0 || i >= len(s.opts) {
		return false
	}
	s.cursor = i
	events.Nav.Cursor(s.screen, s.cursor, len(s.opts))
	return true
}

// Next advances the cursor cyclically. No-op on an empty sequence.
func (s *Sequence) Next() bool {
	return s.step(1)
}

// Previous retreats the cursor cyclically. No-op on an empty sequence.
func (s *Sequence) Previous() bool {
	return s.step(-1)
}

func (s *Sequence) step(delta int) bool {
	n := len(s.opts)
	if n == 0 {
		return false
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
	events.Nav.Cursor(s.screen, s.cursor, n)
	return true
}

// ActivateOutcome classifies what Activate did.
type ActivateOutcome int

const (
	ActivateNothing  ActivateOutcome = iota // no current option
	ActivateSpoke                           // informational option re-announced itself
	ActivateBlocked                         // option exists but is not activatable
	ActivateNotReady                        // host element visible but not yet interactable
	ActivateFailed                          // host invocation returned an error
	ActivateInvoked                         // host action ran
)

// ActivateResult carries the outcome plus the announcement the caller should
// speak, if any.
type ActivateResult struct {
	Outcome      ActivateOutcome
	Announcement string
}

// Activate triggers the current option's host action. Informational options
// re-announce their own label and never touch the host. Interactability is
// checked here, at activation time, because the host may enable an element
// well after it became visible.
func (s *Sequence) Activate() ActivateResult {
	opt, ok := s.Current()
	if !ok {
		return ActivateResult{Outcome: ActivateNothing, Announcement: "Nothing to activate."}
	}
	if opt.Informational {
		return ActivateResult{Outcome: ActivateSpoke, Announcement: opt.Label}
	}
	if !opt.Activatable || opt.Element == nil {
		return ActivateResult{Outcome: ActivateBlocked, Announcement: "Nothing to activate."}
	}
	if !opt.Element.Interactable() {
		events.Nav.NotReady(s.screen, opt.Label)
		return ActivateResult{Outcome: ActivateNotReady, Announcement: opt.Label + " is not ready yet, please wait."}
	}
	events.Nav.Activate(s.screen, opt.Label, opt.Tag)
	if err := opt.Element.Invoke(); err != nil {
		logging.Error(err)
		return ActivateResult{Outcome: ActivateFailed, Announcement: "Action failed."}
	}
	return ActivateResult{Outcome: ActivateInvoked, Announcement: opt.Label}
}

// FindNextByLetter scans forward from the cursor, wrapping once, for the
// first option whose label starts with the given letter. The scan starts
// after the current index and never inspects the current option itself, so a
// single-item list can never match. Returns -1 without moving the cursor when
// nothing matches.
func (s *Sequence) FindNextByLetter(letter rune) int {
	n := len(s.opts)
	if n == 0 {
		return -1
	}
	want := unicode.ToLower(letter)
	for off := 1; off < n; off++ {
		i := (s.cursor + off) % n
		label := strings.TrimSpace(s.opts[i].Label)
		if label == "" {
			continue
		}
		if unicode.ToLower([]rune(label)[0]) == want {
			events.Nav.LetterJump(s.screen, string(letter), true)
			return i
		}
	}
	events.Nav.LetterJump(s.screen, string(letter), false)
	return -1
}
