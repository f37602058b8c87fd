// Package command defines the discrete navigation commands the host forwards
// to the engine and the outcome vocabulary the navigation modes answer with.
package command

// Kind is one keyboard-like navigation command.
type Kind int

const (
	Next Kind = iota
	Previous
	Activate
	Back
	Detail
	ListAll
	Repeat
	Letter
	Increment
	Decrement
	AssignTarget
)

func (k Kind) String() string {
	switch k {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Activate:
		return "activate"
	case Back:
		return "back"
	case Detail:
		return "detail"
	case ListAll:
		return "list-all"
	case Repeat:
		return "repeat"
	case Letter:
		return "letter"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case AssignTarget:
		return "assign-target"
	}
	return "unknown"
}

// Command pairs a kind with its payload. Only Letter carries one.
type Command struct {
	Kind   Kind
	Letter rune
}

// Status reports whether the active mode survives the command.
type Status int

const (
	StatusActive Status = iota
	StatusCommitted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusCommitted:
		return "committed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "active"
	}
}

// Outcome is a mode's answer to one command: the announcement to speak and
// whether the mode terminated.
type Outcome struct {
	Text   string
	Status Status
}

// Done reports whether the outcome ends the mode.
func (o Outcome) Done() bool { return o.Status != StatusActive }
