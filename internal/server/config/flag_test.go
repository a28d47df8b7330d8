package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		start       *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-g", "127.0.0.1:9091", "-e", "production", "-m", "memory",
				"-d", "db", "-s", "secret", "-t", "30", "-k", "12", "-o", "http://x.test, http://y.test",
			},
			start: &Config{},
			expected: &Config{
				Environment:                 Production,
				EndpointAddrHTTP:            "127.0.0.1:9090",
				EndpointAddrGRPC:            "127.0.0.1:9091",
				Storage:                     StorageMemory,
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 30 * time.Minute,
				PasswordHashCost:            12,
				CORSAllowedOrigins:          []string{"http://x.test", "http://y.test"},
			},
		},
		{
			name:  "no flags keep sub-minute ttl",
			args:  []string{"cmd"},
			start: &Config{Environment: Development, AccessTokenValidityDuration: 90 * time.Second},
			expected: &Config{
				Environment:                 Development,
				AccessTokenValidityDuration: 90 * time.Second,
			},
		},
		{
			name:        "bad int",
			args:        []string{"cmd", "-t", "soon"},
			start:       &Config{},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(tt.start) })
				return
			}

			require.NotPanics(t, func() { parseFlags(tt.start) })
			assert.Empty(t, cmp.Diff(tt.expected, tt.start))
		})
	}
}
