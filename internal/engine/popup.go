package engine

import (
	"fmt"

	"github.com/kestrelaudio/screenvoice/internal/announce"
	"github.com/kestrelaudio/screenvoice/internal/command"
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/options"
)

// popupMode narrates a generic notification popup straight off the option
// model: informational paragraphs first, buttons after, a generic close last.
type popupMode struct {
	title string
	seq   *options.Sequence
}

func newPopupMode(snap host.Snapshot) *popupMode {
	title := snap.Title
	if title == "" {
		title = "Notification"
	}
	return &popupMode{title: title, seq: options.Build(snap)}
}

func (p *popupMode) Entry() string {
	first := ""
	if opt, ok := p.seq.Current(); ok {
		first = opt.Label
	}
	return announce.Entry(p.title, p.seq.Count(), first)
}

func (p *popupMode) Next() string {
	p.seq.Next()
	return p.Repeat()
}

func (p *popupMode) Previous() string {
	p.seq.Previous()
	return p.Repeat()
}

func (p *popupMode) Repeat() string {
	opt, ok := p.seq.Current()
	if !ok {
		return "No options."
	}
	return announce.Step(p.seq.Index(), p.seq.Count(), opt.Label, opt.Metric)
}

func (p *popupMode) Detail() string {
	opt, ok := p.seq.Current()
	if !ok {
		return "No options."
	}
	return announce.Detail(opt.Label, opt.Detail)
}

func (p *popupMode) ListAll() string {
	labels := make([]string, 0, p.seq.Count())
	for _, opt := range p.seq.Options() {
		labels = append(labels, opt.Label)
	}
	return announce.ListAll(p.title, labels)
}

func (p *popupMode) Letter(letter rune) string {
	idx := p.seq.FindNextByLetter(letter)
	if idx < 0 {
		return fmt.Sprintf("No item starting with %c.", letter)
	}
	p.seq.SetIndex(idx)
	return p.Repeat()
}

func (p *popupMode) Activate() command.Outcome {
	res := p.seq.Activate()
	if res.Outcome != options.ActivateInvoked {
		return command.Outcome{Text: res.Announcement}
	}
	// A popup's buttons dismiss it; the host reports the follow-up screen.
	return command.Outcome{Text: res.Announcement, Status: command.StatusCommitted}
}

// Back dismisses the popup through its closing option: tag lookup first, the
// legacy label heuristic and last-activatable fallback behind it.
func (p *popupMode) Back() command.Outcome {
	idx := p.seq.SelectByTag(options.CloseTags...)
	if idx < 0 {
		return command.Outcome{Text: "Closed.", Status: command.StatusCancelled}
	}
	p.seq.SetIndex(idx)
	res := p.seq.Activate()
	return command.Outcome{Text: res.Announcement, Status: command.StatusCancelled}
}
