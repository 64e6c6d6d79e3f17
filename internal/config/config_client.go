package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientServerAddress = "http://localhost:8080"
	DefaultClientLogFile       = "pocket-money-client.log"
	DefaultClientLogMaxSizeMB  = 5
	DefaultClientLogMaxBackups = 3
	DefaultClientLogMaxAgeDays = 14
	DefaultKeyringService      = "go-pocket-money"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server API.
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientLog configures the rotated client log file.
type ClientLog struct {
	FilePath   string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB"`
	MaxBackups int    `env:"MAX_BACKUPS"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS"`
}

// ClientSession configures where the session token is persisted.
type ClientSession struct {
	// KeyringService is the service name under which the token is stored in
	// the OS keyring.
	KeyringService string `env:"KEYRING_SERVICE"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"CLIENT_SERVER_"`
	// Log contains log file rotation settings.
	Log ClientLog `envPrefix:"CLIENT_LOG_"`
	// Session contains token persistence settings.
	Session ClientSession `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration.
//
// Values set in overrides (usually parsed command-line flags) take priority,
// followed by environment variables and then client defaults.
func GetClientConfig(overrides *ClientConfig) (*ClientConfig, error) {
	sources := make([]*ClientConfig, 0, 3)
	if overrides != nil {
		sources = append(sources, overrides)
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}
	sources = append(sources, envCfg, defaultClientConfig())

	cfg := new(ClientConfig)
	for _, src := range sources {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return cfg, nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: ClientLog{
			FilePath:   DefaultClientLogFile,
			MaxSizeMB:  DefaultClientLogMaxSizeMB,
			MaxBackups: DefaultClientLogMaxBackups,
			MaxAgeDays: DefaultClientLogMaxAgeDays,
		},
		Session: ClientSession{
			KeyringService: DefaultKeyringService,
		},
	}
}
