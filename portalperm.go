// Package portalperm decides what the signed in user of a property management portal may do.
package portalperm

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/supremind/portalperm/internal/authorizer"
	"github.com/supremind/portalperm/internal/request"
	"github.com/supremind/portalperm/internal/store"
	"github.com/supremind/portalperm/internal/sweeper"
	"github.com/supremind/portalperm/types"
)

// New creates an Authorizer with nobody signed in.
// Expired temporary grants are swept in background until ctx is done.
func New(ctx context.Context, opts ...AuthorizerOption) (types.Authorizer, error) {
	cfg := &AuthorizerConfig{
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if e := cfg.cfg.Validate(); e != nil {
		return nil, e
	}

	if cfg.log == nil {
		l := stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
		cfg.log = &l
	}
	l := *cfg.log

	if cfg.clock == nil {
		cfg.clock = types.SystemClock
	}
	if cfg.sink == nil {
		cfg.sink = cfg.cfg.requestSink()
	}

	presets := cfg.presets
	if cfg.cfg.SuperRole != "" {
		presets = append([]types.PresetPolicy{SuperRole(cfg.cfg.SuperRole)}, presets...)
	}

	s := store.New(cfg.clock, l.WithName("store"), store.Config{
		CacheTTL:      cfg.cfg.CacheTTL,
		GrantDuration: cfg.cfg.DefaultGrantDuration,
	})
	t := request.New(cfg.sink, cfg.clock, l.WithName("requests"))
	authz := authorizer.New(s, t, l, presets...)

	sweeper.Start(ctx, authz, cfg.cfg.SweepInterval, l.WithName("sweeper"))

	return authz, nil
}

// WithConfig replaces the default config
func WithConfig(c Config) AuthorizerOption {
	return func(cfg *AuthorizerConfig) {
		cfg.cfg = c
	}
}

// WithLogger sets logger for authorizer components
func WithLogger(l logr.Logger) AuthorizerOption {
	return func(cfg *AuthorizerConfig) {
		cfg.log = &l
	}
}

// WithClock sets the time source of cache and grant expiry
func WithClock(c types.Clock) AuthorizerOption {
	return func(cfg *AuthorizerConfig) {
		cfg.clock = c
	}
}

// WithRequestSink sets where permission requests are sent,
// overriding the HTTP sink configured by Config.APIBaseURL
func WithRequestSink(s types.RequestSink) AuthorizerOption {
	return func(cfg *AuthorizerConfig) {
		cfg.sink = s
	}
}

// WithPresetPolicies adds preset policies to authorizer, they run after the super role
func WithPresetPolicies(presets ...types.PresetPolicy) AuthorizerOption {
	return func(cfg *AuthorizerConfig) {
		cfg.presets = append(cfg.presets, presets...)
	}
}

// AuthorizerConfig works together with AuthorizerOption to control the initialization of authorizer
type AuthorizerConfig struct {
	cfg     Config
	log     *logr.Logger
	clock   types.Clock
	sink    types.RequestSink
	presets []types.PresetPolicy
}

// AuthorizerOption controls how to init an authorizer
type AuthorizerOption func(*AuthorizerConfig)
