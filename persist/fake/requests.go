package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/supremind/portalperm/types"
)

var _ types.RequestSink = (*RequestSink)(nil)

// RequestSink keeps submitted requests in memory, it should not be used in real works
type RequestSink struct {
	mu       sync.Mutex
	requests []types.PermissionRequest
	seen     map[string]struct{}
	fail     error
	hook     func(types.PermissionRequest)
	changes  chan types.PermissionRequest
}

// NewRequestSink returns an empty fake sink
func NewRequestSink() *RequestSink {
	return &RequestSink{
		seen:    make(map[string]struct{}),
		changes: make(chan types.PermissionRequest, 64),
	}
}

// Submit implements types.RequestSink, a request id can only be submitted once
func (s *RequestSink) Submit(ctx context.Context, req types.PermissionRequest) error {
	if e := ctx.Err(); e != nil {
		return e
	}

	s.mu.Lock()
	fail, hook := s.fail, s.hook
	s.mu.Unlock()

	if hook != nil {
		hook(req)
	}
	if fail != nil {
		return fail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[req.ID]; ok {
		return fmt.Errorf("%w: duplicated request %s", types.ErrRequestRejected, req.ID)
	}
	s.seen[req.ID] = struct{}{}
	s.requests = append(s.requests, req)

	select {
	case s.changes <- req:
	default:
	}
	return nil
}

// Fail makes every following Submit return e, nil restores success
func (s *RequestSink) Fail(e error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = e
}

// Hook calls f with every request before it is accepted or failed
func (s *RequestSink) Hook(f func(types.PermissionRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = f
}

// List returns accepted requests in submission order
func (s *RequestSink) List() []types.PermissionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.PermissionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Watch returns accepted requests as they arrive, the channel holds up to 64 unread requests
func (s *RequestSink) Watch(context.Context) (<-chan types.PermissionRequest, error) {
	return s.changes, nil
}
