package events

import "github.com/kestrelaudio/screenvoice/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) SessionStart(sessionID string) {
	logging.Trace("app.session", map[string]interface{}{"session": sessionID})
}

func (AppTracer) ModeDone(screen, status string) {
	logging.Trace("app.mode_done", map[string]interface{}{"screen": screen, "status": status})
}

func (AppTracer) Shutdown(reason string) {
	logging.Trace("app.shutdown", map[string]interface{}{"reason": reason})
}
