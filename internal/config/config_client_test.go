package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultClientServerAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultClientLogFile, cfg.Log.FilePath)
	assert.Equal(t, DefaultKeyringService, cfg.Session.KeyringService)
}

func TestGetClientConfig_EnvOverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CLIENT_SERVER_ADDRESS":         "http://pocket.local:9000",
		"CLIENT_SERVER_REQUEST_TIMEOUT": "3s",
		"CLIENT_KEYRING_SERVICE":        "pocket-test",
	})

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://pocket.local:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "pocket-test", cfg.Session.KeyringService)
}

func TestGetClientConfig_OverridesWin(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CLIENT_SERVER_ADDRESS": "http://from-env",
	})

	cfg, err := GetClientConfig(&ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://from-flag"},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://from-flag", cfg.Adapter.HTTPAddress)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClientConfig
		want error
	}{
		{
			name: "missing address",
			cfg:  ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}, Session: ClientSession{KeyringService: "s"}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "missing timeout",
			cfg:  ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x"}, Session: ClientSession{KeyringService: "s"}},
			want: ErrInvalidAdapterConfigs,
		},
		{
			name: "missing keyring service",
			cfg:  ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second}},
			want: ErrInvalidSessionConfigs,
		},
		{
			name: "valid",
			cfg:  ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second}, Session: ClientSession{KeyringService: "s"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
