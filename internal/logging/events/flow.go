package events

import "github.com/kestrelaudio/screenvoice/internal/logging"

type FlowTracer struct{}

var Flow = FlowTracer{}

func (FlowTracer) Transition(flow, from, to string) {
	logging.Trace("flow.transition", map[string]interface{}{"flow": flow, "from": from, "to": to})
}

func (FlowTracer) Terminated(flow, reason string) {
	logging.Trace("flow.terminated", map[string]interface{}{"flow": flow, "reason": reason})
}

func (FlowTracer) PendingConfirm(flow string, raised bool) {
	logging.Trace("flow.pending-confirm", map[string]interface{}{"flow": flow, "raised": raised})
}

func (FlowTracer) InputRequested(flow, prompt string) {
	logging.Trace("flow.input-requested", map[string]interface{}{"flow": flow, "prompt": prompt})
}

func (FlowTracer) InputResolved(flow string, cancelled bool) {
	logging.Trace("flow.input-resolved", map[string]interface{}{"flow": flow, "cancelled": cancelled})
}

func (FlowTracer) ActionError(flow, action string, err error) {
	payload := map[string]interface{}{"flow": flow, "action": action}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("flow.action-error", payload)
}
