package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
		{
			name:     "IPv6 host",
			addr:     NetAddress{Host: "::1", Port: 9090},
			expected: "[::1]:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number is a positive integer",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("zsync", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-c", "/etc/zsync.json",
		"-a", "https://api.example.org",
		"--request-timeout", "15s",
		"-d", "/tmp/library.db",
		"--sync-interval", "2m",
		"--max-conflict-rounds", "5",
		"--max-transport-attempts", "8",
		"--session-policy", "queue",
		"--log-file", "/tmp/zsync.log",
	}))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/etc/zsync.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.example.org", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/library.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5, cfg.Sync.MaxConflictRounds)
	assert.Equal(t, 8, cfg.Sync.MaxTransportAttempts)
	assert.Equal(t, "queue", cfg.Sync.SessionPolicy)
	assert.Equal(t, "/tmp/zsync.log", cfg.Log.File)
}

func TestParseFlags_ServerFlags(t *testing.T) {
	fs := pflag.NewFlagSet("apiserver", pflag.ContinueOnError)
	RegisterServerFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--listen", "127.0.0.1:9000",
		"--key-sign-key", "s3cret",
		"--key-ttl", "48h",
		"--fixtures", "/srv/fixtures.json",
	}))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "s3cret", cfg.Server.KeySignKey)
	assert.Equal(t, 48*time.Hour, cfg.Server.KeyTTL)
	assert.Equal(t, "/srv/fixtures.json", cfg.Server.FixturesPath)
}

func TestParseFlags_Unset(t *testing.T) {
	fs := pflag.NewFlagSet("zsync", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_PartialFlagSet verifies that flags missing from the set are
// skipped rather than reported as errors.
func TestParseFlags_PartialFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("apiserver", pflag.ContinueOnError)
	fs.String(FlagListen, "", "")
	require.NoError(t, fs.Parse([]string{"--listen", "localhost:8088"}))

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8088", cfg.Server.HTTPAddress)
}

func TestParseFlags_InvalidListen(t *testing.T) {
	fs := pflag.NewFlagSet("apiserver", pflag.ContinueOnError)
	RegisterServerFlags(fs)
	assert.Error(t, fs.Parse([]string{"--listen", "nowhere"}))
}
