package config

import (
	"testing"
	"time"

	"foodadmin/internal/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvAPIURL, EnvLogFile, EnvLogLevel, EnvDeletePolicy, EnvCloseOnSubmit, EnvHTTPTimeout,
		EnvServerAddr, EnvServerSeed, EnvServerLogLevel,
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultLogFile(), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, dashboard.RemoveAlways, cfg.DeletePolicy)
	assert.True(t, cfg.CloseOnSubmit)
	assert.Zero(t, cfg.HTTPTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIURL, "https://api.example.com")
	t.Setenv(EnvLogFile, "/tmp/x.log")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvDeletePolicy, "restore")
	t.Setenv(EnvCloseOnSubmit, "false")
	t.Setenv(EnvHTTPTimeout, "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		APIURL:        "https://api.example.com",
		LogFile:       "/tmp/x.log",
		LogLevel:      "debug",
		DeletePolicy:  dashboard.RemoveThenRestore,
		CloseOnSubmit: false,
		HTTPTimeout:   5 * time.Second,
	}, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		EnvDeletePolicy:  "sometimes",
		EnvCloseOnSubmit: "maybe",
		EnvHTTPTimeout:   "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DefersValidationToFlags(t *testing.T) {
	cases := map[string]string{
		EnvAPIURL:   "localhost:3333",
		EnvLogLevel: "chatty",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())

			// a flag override repairs the value before validation
			cfg.APIURL = DefaultAPIURL
			cfg.LogLevel = "info"
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{APIURL: DefaultAPIURL, LogLevel: "info", HTTPTimeout: -time.Second}
	assert.Error(t, cfg.Validate())
}

func TestLoadServer(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, &ServerConfig{Addr: ":3333", LogLevel: "info"}, cfg)

	t.Setenv(EnvServerAddr, "127.0.0.1:8080")
	t.Setenv(EnvServerSeed, "db.json")
	cfg, err = LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "db.json", cfg.SeedFile)

	t.Setenv(EnvServerLogLevel, "loud")
	cfg, err = LoadServer()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}
