package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("index only", func(t *testing.T) {
		cfg, err := parseConfig([]string{"3"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Index)
		assert.Equal(t, uint64(25), cfg.Self().ID)
		assert.Equal(t, 5*time.Second, cfg.RPCTimeout)
	})

	t.Run("flags before index", func(t *testing.T) {
		cfg, err := parseConfig([]string{"-http-port", "8080", "-rpc-timeout", "250ms", "-workers", "4", "1"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Index)
		assert.Equal(t, 8080, cfg.HTTPPort)
		assert.Equal(t, 250*time.Millisecond, cfg.RPCTimeout)
		assert.Equal(t, 4, cfg.MaxWorkers)
	})

	t.Run("flags after index", func(t *testing.T) {
		cfg, err := parseConfig([]string{"5", "-max-hops", "8", "-log-level", "debug", "-log-format", "json"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Index)
		assert.Equal(t, 8, cfg.MaxHops)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("ring file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ring.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`m: 4
members:
  - {id: 1, host: 127.0.0.1, port: 6000}
  - {id: 9, host: 127.0.0.1, port: 6001}
`), 0o644))

		cfg, err := parseConfig([]string{"-config", path, "1"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.M)
		assert.Equal(t, uint64(9), cfg.Self().ID)
		assert.Equal(t, "127.0.0.1:6001", cfg.Self().Address())
	})

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing index", args: nil},
		{name: "two indexes", args: []string{"1", "2"}},
		{name: "not a number", args: []string{"first"}},
		{name: "index out of range", args: []string{"6"}},
		{name: "bad timeout", args: []string{"-rpc-timeout", "0s", "0"}},
		{name: "unknown flag", args: []string{"-bootstrap", "x", "0"}},
		{name: "missing ring file", args: []string{"-config", "/nonexistent/ring.yaml", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}
