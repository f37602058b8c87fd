package options

import (
	"github.com/kestrelaudio/screenvoice/internal/host"
	"github.com/kestrelaudio/screenvoice/internal/logging/events"
)

// Build snapshots a screen into a sequence. Construction is total: an element
// whose description cannot be read is skipped and logged, never fatal, so a
// screen with one broken field stays navigable with whatever succeeded.
//
// Order mirrors the screen's visual order within three bands: informational
// items first, then action-bearing items, generic dismiss items always last.
func Build(snap host.Snapshot) *Sequence {
	var info, actions, dismiss []Option
	for i, el := range snap.Elements {
		if el == nil {
			events.Nav.SkippedElement(string(snap.Screen), i, nil)
			continue
		}
		desc, err := el.Describe()
		if err != nil {
			events.Nav.SkippedElement(string(snap.Screen), i, err)
			continue
		}
		opt := Option{
			Label:         host.CleanText(desc.Label),
			Detail:        host.CleanText(desc.Detail),
			Tag:           desc.Tag,
			Informational: desc.Informational,
			Activatable:   !desc.Informational,
			Element:       el,
		}
		if opt.Label == "" {
			events.Nav.SkippedElement(string(snap.Screen), i, nil)
			continue
		}
		switch {
		case desc.Informational:
			info = append(info, opt)
		case desc.Dismiss:
			dismiss = append(dismiss, opt)
		default:
			actions = append(actions, opt)
		}
	}
	opts := make([]Option, 0, len(info)+len(actions)+len(dismiss))
	opts = append(opts, info...)
	opts = append(opts, actions...)
	opts = append(opts, dismiss...)
	return New(string(snap.Screen), opts)
}
