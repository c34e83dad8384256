// Package request keeps permission requests and delivers them to a sink.
package request

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/supremind/portalperm/types"
)

// Tracker inserts requests optimistically and rolls them back when the sink fails.
// It is safe for concurrent use, and never holds its lock while the sink works.
type Tracker struct {
	sink     types.RequestSink
	clock    types.Clock
	validate *validator.Validate
	log      logr.Logger

	mu        sync.Mutex
	requester string
	requests  []types.PermissionRequest
}

// New creates a tracker, sink may be nil and then every request fails
func New(sink types.RequestSink, clock types.Clock, l logr.Logger) *Tracker {
	if clock == nil {
		clock = types.SystemClock
	}
	return &Tracker{
		sink:     sink,
		clock:    clock,
		validate: validator.New(),
		log:      l,
	}
}

// SetRequester sets the identity requests are made for, switching identity drops tracked requests
func (t *Tracker) SetRequester(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id != t.requester {
		t.requests = nil
	}
	t.requester = id
}

// Submit builds a pending request and sends it, failures come back in the result
func (t *Tracker) Submit(ctx context.Context, permission, reason string, d time.Duration) types.RequestResult {
	t.mu.Lock()
	requester := t.requester
	t.mu.Unlock()

	if requester == "" {
		return types.RequestResult{Err: types.ErrNotAuthenticated}
	}
	if t.sink == nil {
		return types.RequestResult{Err: types.ErrNoRequestSink}
	}

	req := t.build(requester, permission, reason, d)
	if e := t.validate.Struct(req); e != nil {
		return types.RequestResult{Err: fmt.Errorf("%w: %v", types.ErrInvalidRequest, e)}
	}

	t.log.V(4).Info("request permission", "id", req.ID, "permission", permission, "duration", d)
	t.add(req)

	if e := t.sink.Submit(ctx, req); e != nil {
		t.log.Error(e, "submit permission request", "id", req.ID, "permission", permission)
		t.remove(req.ID)
		return types.RequestResult{Err: e}
	}

	return types.RequestResult{Success: true, RequestID: req.ID}
}

func (t *Tracker) build(requester, permission, reason string, d time.Duration) types.PermissionRequest {
	id, e := uuid.NewV7()
	if e != nil {
		id = uuid.New()
	}

	req := types.PermissionRequest{
		ID:          id.String(),
		Permission:  permission,
		Reason:      reason,
		RequestedBy: requester,
		RequestedAt: t.clock.Now().UnixMilli(),
		Status:      types.RequestPending,
	}
	if d > 0 {
		ms := d.Milliseconds()
		req.Duration = &ms
	}
	return req
}

func (t *Tracker) add(req types.PermissionRequest) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = append(t.requests, req)
}

func (t *Tracker) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, req := range t.requests {
		if req.ID == id {
			t.requests = append(t.requests[:i], t.requests[i+1:]...)
			return
		}
	}
}

// List returns tracked requests in submission order
func (t *Tracker) List() []types.PermissionRequest {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]types.PermissionRequest, len(t.requests))
	copy(out, t.requests)
	return out
}
