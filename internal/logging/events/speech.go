package events

import "github.com/kestrelaudio/screenvoice/internal/logging"

type SpeechTracer struct{}

var Speech = SpeechTracer{}

func (SpeechTracer) Spoken(text string, interrupt bool) {
	logging.Trace("speech.spoken", map[string]interface{}{"text": text, "interrupt": interrupt})
}
