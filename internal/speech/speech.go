// Package speech defines the output channel the engine talks through. The
// actual text-to-speech device lives in the host; from this side speaking is
// fire-and-forget with an optional interrupt of whatever is mid-utterance.
package speech

import (
	"sync"

	"github.com/kestrelaudio/screenvoice/internal/logging/events"
)

// Output receives announcement text. interrupt asks the device to cut off any
// in-flight utterance before speaking.
type Output interface {
	Speak(text string, interrupt bool)
}

// Line is one recorded utterance.
type Line struct {
	Text      string
	Interrupt bool
}

// Transcript records everything spoken. It backs the demo's transcript pane
// and the test suites.
type Transcript struct {
	mu    sync.Mutex
	lines []Line
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Speak(text string, interrupt bool) {
	if text == "" {
		return
	}
	t.mu.Lock()
	t.lines = append(t.lines, Line{Text: text, Interrupt: interrupt})
	t.mu.Unlock()
	events.Speech.Spoken(text, interrupt)
}

// Lines returns a copy of everything spoken so far, oldest first.
func (t *Transcript) Lines() []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	dup := make([]Line, len(t.lines))
	copy(dup, t.lines)
	return dup
}

// Last returns the most recent utterance, or an empty string.
func (t *Transcript) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lines) == 0 {
		return ""
	}
	return t.lines[len(t.lines)-1].Text
}

// Tail returns up to n of the most recent utterances, oldest first.
func (t *Transcript) Tail(n int) []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n <= 0 || len(t.lines) == 0 {
		return nil
	}
	start := len(t.lines) - n
	if start < 0 {
		start = 0
	}
	dup := make([]Line, len(t.lines)-start)
	copy(dup, t.lines[start:])
	return dup
}

// Discard drops everything. Useful when a host has no speech device attached.
type Discard struct{}

func (Discard) Speak(string, bool) {}
