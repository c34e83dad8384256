package portalperm

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/supremind/portalperm/internal/store"
	"github.com/supremind/portalperm/internal/sweeper"
	"github.com/supremind/portalperm/persist/httpsink"
	"github.com/supremind/portalperm/types"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "PORTALPERM"

// Config tunes an authorizer
type Config struct {
	CacheTTL             time.Duration `envconfig:"CACHE_TTL" default:"5m" validate:"gte=0"`
	SweepInterval        time.Duration `envconfig:"SWEEP_INTERVAL" default:"60s" validate:"gte=0"`
	DefaultGrantDuration time.Duration `envconfig:"DEFAULT_GRANT_DURATION" default:"1h" validate:"gte=0"`

	// SuperRole passes every check, empty disables it
	SuperRole types.Role `envconfig:"SUPER_ROLE" default:"system_admin"`

	// APIBaseURL is where permission requests are posted, requests fail if it is empty
	// and no other sink is given
	APIBaseURL      string        `envconfig:"API_BASE_URL" validate:"omitempty,url"`
	RequestEndpoint string        `envconfig:"REQUEST_ENDPOINT" default:"/permissions/request"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s" validate:"gte=0"`
}

// DefaultConfig returns the config used when none is given
func DefaultConfig() Config {
	return Config{
		CacheTTL:             store.DefaultCacheTTL,
		SweepInterval:        sweeper.DefaultInterval,
		DefaultGrantDuration: store.DefaultGrantDuration,
		SuperRole:            types.SystemAdmin,
		RequestEndpoint:      httpsink.DefaultEndpoint,
		RequestTimeout:       10 * time.Second,
	}
}

// LoadConfig reads config from PORTALPERM_* environment variables
func LoadConfig() (Config, error) {
	var cfg Config
	if e := envconfig.Process(EnvPrefix, &cfg); e != nil {
		return Config{}, fmt.Errorf("load config: %w", e)
	}
	if e := cfg.Validate(); e != nil {
		return Config{}, e
	}
	return cfg, nil
}

// Validate checks durations are not negative and the base url parses
func (c Config) Validate() error {
	if e := validator.New().Struct(c); e != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidConfig, e)
	}
	return nil
}

func (c Config) requestSink() types.RequestSink {
	if c.APIBaseURL == "" {
		return nil
	}
	return httpsink.NewRequestSink(c.APIBaseURL,
		httpsink.WithEndpoint(c.RequestEndpoint),
		httpsink.WithTimeout(c.RequestTimeout),
	)
}
