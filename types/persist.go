package types

import (
	"context"
	"time"
)

// RequestSink delivers permission requests to whoever approves them
type RequestSink interface {
	// Submit sends a request, a nil error means the remote accepted it
	Submit(context.Context, PermissionRequest) error
}

// RequestStatus is the approval state of a PermissionRequest
type RequestStatus string

// request states
const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

// PermissionRequest asks for a permission the subject does not hold.
// Duration is in milliseconds and nil when the request is not time bounded,
// RequestedAt is in Unix milliseconds.
type PermissionRequest struct {
	ID          string        `json:"id" validate:"required"`
	Permission  string        `json:"permission" validate:"required,contains=."`
	Reason      string        `json:"reason" validate:"required"`
	Duration    *int64        `json:"duration" validate:"omitempty,gt=0"`
	RequestedBy string        `json:"requestedBy" validate:"required"`
	RequestedAt int64         `json:"requestedAt"`
	Status      RequestStatus `json:"status" validate:"required"`
}

// Lifetime returns the requested duration, zero when not bounded
func (r PermissionRequest) Lifetime() time.Duration {
	if r.Duration == nil {
		return 0
	}
	return time.Duration(*r.Duration) * time.Millisecond
}

// RequestResult reports the outcome of RequestPermission
type RequestResult struct {
	Success   bool
	RequestID string
	Err       error
}
