// Package flow implements the linear multi-step selection machines: the
// three-state mission response flow and the six-state refit editor, plus the
// pending-confirmation overlay and the single-slot text-input continuation
// they share. Each state owns its own option set; transitions never leave the
// cursor out of bounds for the new state's options.
package flow

import "github.com/kestrelaudio/screenvoice/internal/command"

func active(text string) command.Outcome {
	return command.Outcome{Text: text}
}

func committed(text string) command.Outcome {
	return command.Outcome{Text: text, Status: command.StatusCommitted}
}

func cancelled(text string) command.Outcome {
	return command.Outcome{Text: text, Status: command.StatusCancelled}
}
