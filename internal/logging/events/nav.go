package events

import "github.com/kestrelaudio/screenvoice/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Cursor(screen string, index, count int) {
	logging.Trace("nav.cursor", map[string]interface{}{"screen": screen, "index": index, "count": count})
}

func (NavTracer) Activate(screen, label, tag string) {
	logging.Trace("nav.activate", map[string]interface{}{"screen": screen, "label": label, "tag": tag})
}

func (NavTracer) NotReady(screen, label string) {
	logging.Trace("nav.not-ready", map[string]interface{}{"screen": screen, "label": label})
}

func (NavTracer) SkippedElement(screen string, index int, err error) {
	payload := map[string]interface{}{"screen": screen, "index": index}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("nav.skipped-element", payload)
}

func (NavTracer) LetterJump(screen string, letter string, found bool) {
	logging.Trace("nav.letter-jump", map[string]interface{}{"screen": screen, "letter": letter, "found": found})
}

// LegacyLabelFallback fires when tag-based close detection failed and the
// localized-label heuristic picked the option instead. Kept loud so stray
// call sites remain visible in traces.
func (NavTracer) LegacyLabelFallback(screen, label string, distance int) {
	logging.Trace("nav.legacy-label-fallback", map[string]interface{}{"screen": screen, "label": label, "distance": distance})
}
