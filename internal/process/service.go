package process

import (
	"context"
	"sync"
	"time"

	"github.com/tunegrab/tunegrab/internal/model"
)

// Service owns the request state for the single-page client. All transitions
// funnel through Submit: it clears the previous outcome, bumps the sequence
// number, and launches the request goroutine. A settlement is applied only if
// its sequence number still matches the most recently issued submission, so a
// slow stale response can never overwrite a newer one. The transport itself is
// not cancelled; discarding the result on arrival is sufficient.
type Service struct {
	mu        sync.Mutex
	state     model.RequestState
	processor Processor
	timeout   time.Duration
	onUpdate  func(model.RequestState) // callback for UI updates
}

// NewService creates a lifecycle service over the given processor.
func NewService(processor Processor, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Service{
		processor: processor,
		timeout:   timeout,
		state:     model.RequestState{Phase: model.PhaseIdle},
	}
}

// SetUpdateCallback sets the callback invoked with a state snapshot after
// every transition. The callback may run on the request goroutine.
func (s *Service) SetUpdateCallback(callback func(model.RequestState)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetRequestTimeout changes the per-request deadline for future submissions.
func (s *Service) SetRequestTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	s.mu.Lock()
	s.timeout = timeout
	s.mu.Unlock()
}

// SetInputText stores the pending form value. No validation, no side effects.
func (s *Service) SetInputText(text string) {
	s.mu.Lock()
	s.state.InputText = text
	s.mu.Unlock()
}

// State returns a snapshot of the current request state.
func (s *Service) State() model.RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit issues a processing request for the current input text. The previous
// result and error are cleared before the new outcome is known, so stale data
// never co-renders with a fresh failure. An empty input is forwarded as-is.
func (s *Service) Submit() {
	s.mu.Lock()
	s.state.Seq++
	seq := s.state.Seq
	link := s.state.InputText
	timeout := s.timeout
	s.state.Phase = model.PhasePending
	s.state.Result = nil
	s.state.ErrMessage = ""
	snapshot := s.state
	s.mu.Unlock()

	s.notifyUpdate(snapshot)

	go s.run(seq, link, timeout)
}

// run performs the request and applies the settlement unless superseded.
func (s *Service) run(seq uint64, link string, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := s.processor.ProcessLink(ctx, link)

	s.mu.Lock()
	if seq != s.state.Seq {
		// A newer submission superseded this one; drop the settlement.
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state.Phase = model.PhaseFailed
		s.state.ErrMessage = UserMessage(err)
		s.state.Result = nil
	} else {
		s.state.Phase = model.PhaseSucceeded
		s.state.Result = result
		s.state.ErrMessage = ""
	}
	snapshot := s.state
	s.mu.Unlock()

	s.notifyUpdate(snapshot)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(state model.RequestState) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}
