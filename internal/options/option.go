// Package options implements the navigable option model: a flat ordered
// sequence of speakable entries built from a screen snapshot, with a cyclic
// cursor, tag-based selection and first-letter search.
package options

import "github.com/kestrelaudio/screenvoice/internal/host"

// Option is a single speakable, optionally activatable unit of content.
type Option struct {
	Label         string
	Detail        string
	Tag           string // stable locale-independent action tag
	Informational bool
	Activatable   bool
	Metric        string // secondary metric appended to step announcements, e.g. "72 percent"
	Element       host.Element // originating host element; nil for flow-synthesized options
}

// Standard closing tags, tried in order by SelectByTag when dismissing a
// screen. Tag matching is authoritative; label heuristics are legacy only.
var CloseTags = []string{"Close", "OK", "Cancel", "Dismiss"}
