package host

import "errors"

// ErrInputPending means a second text-input request was issued before the
// first resolved. The flow holds at most one continuation at a time, so this
// is a programming error in the caller, not a runtime condition.
var ErrInputPending = errors.New("text input request already pending")

// InputFunc resumes a suspended flow. value is nil when the user cancelled.
// The returned text is the announcement to speak after resuming.
type InputFunc func(value *string) string

// InputSlot is the single-slot continuation used to collect free-form text
// without blocking the command loop. Requesting input stores the continuation;
// resolution consumes and clears it before resuming.
type InputSlot struct {
	prompt string
	resume InputFunc
}

// Pending reports whether a request is waiting on the host.
func (s *InputSlot) Pending() bool {
	return s != nil && s.resume != nil
}

// Prompt returns the text shown to the user for the pending request.
func (s *InputSlot) Prompt() string {
	if s == nil {
		return ""
	}
	return s.prompt
}

// Request stores the continuation and hands the prompt to the host.
func (s *InputSlot) Request(prompt string, resume InputFunc) error {
	if s.resume != nil {
		return ErrInputPending
	}
	s.prompt = prompt
	s.resume = resume
	return nil
}

// Resolve delivers the host's answer and returns the announcement to speak.
// The slot is cleared before the continuation runs so the continuation may
// legally issue a fresh request.
func (s *InputSlot) Resolve(value *string) string {
	resume := s.resume
	s.prompt = ""
	s.resume = nil
	if resume == nil {
		return ""
	}
	return resume(value)
}

// CancelPending resolves the pending request, if any, with no value.
func (s *InputSlot) CancelPending() string {
	if !s.Pending() {
		return ""
	}
	return s.Resolve(nil)
}
