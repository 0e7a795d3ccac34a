package analysis

import (
	"context"
	"sync"
)

// Service runs analysis asynchronously for the TUI.
type Service struct {
	analyzer Analyzer

	mu      sync.Mutex
	pending *Report
	err     error
	ready   bool
	gen     uint64
	cancel  context.CancelFunc
}

// NewService creates an analysis service.
func NewService(analyzer Analyzer) *Service {
	return &Service{analyzer: analyzer}
}

// Request starts analysis of h in the background. A newer request cancels
// the one in flight and drops any result it would have delivered, so only
// the latest request can fill the slot.
func (s *Service) Request(ctx context.Context, h History) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	go func() {
		defer cancel()
		report, err := s.analyzer.Analyze(ctx, h)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = report
		s.err = err
		s.ready = true
		s.cancel = nil
	}()
}

// Consume returns the pending result if one is ready. The slot is cleared
// after consumption.
func (s *Service) Consume() (*Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false, nil
	}
	report, err := s.pending, s.err
	s.pending = nil
	s.err = nil
	s.ready = false
	return report, true, err
}

// Running reports whether a request is in flight.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
