package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expected  *Config
		expectErr bool
	}{
		{
			name:     "all flags",
			args:     []string{"-a", "https://nvpwelfare.in/api", "-d", "/var/portal.db", "-o", "/tmp/docs", "-l", ":8090"},
			expected: &Config{BackendURL: "https://nvpwelfare.in/api", StateDSN: "/var/portal.db", OutputDir: "/tmp/docs", ListenAddr: ":8090"},
		},
		{
			name:     "unknown flags and subcommands are ignored",
			args:     []string{"serve", "-x", "1", "-o=/out"},
			expected: &Config{OutputDir: "/out"},
		},
		{
			name:      "missing value",
			args:      []string{"-a"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
