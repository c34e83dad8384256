package types

import "errors"

// exported errors
var (
	ErrInvalidIdentity  = errors.New("invalid identity, it needs an id and a role")
	ErrInvalidRequest   = errors.New("invalid permission request")
	ErrNotAuthenticated = errors.New("no authenticated identity")
	ErrRequestRejected  = errors.New("permission request rejected by remote")
	ErrNoRequestSink    = errors.New("permission request sink is not configured")
	ErrInvalidConfig    = errors.New("invalid authorizer config")
)
