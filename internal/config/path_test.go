package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SIBYL_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute unchanged", in: "/tmp/readings.db", want: "/tmp/readings.db"},
		{name: "tilde prefix", in: "~/readings.db", want: filepath.Join(home, "readings.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$SIBYL_TEST_DIR/readings.db", want: "/var/data/readings.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.True(t, filepath.IsAbs(path) || path == filepath.Join(".", "readings.db"))
	assert.Equal(t, "readings.db", filepath.Base(path))
}
