package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
	return name
}

func TestLoadConfigMissing(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "aoc.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), c)
	require.Equal(t, "data", c.DataDir)
	require.Equal(t, "input.txt", c.Input)
	require.Equal(t, 2022, c.Year)
	require.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `
data_dir: inputs
log_level: debug
days:
  1:
    want: ["24000", "45000"]
  15:
    params:
      row: 2000000
      limit: 4000000
    want: ["", "56000011"]
`))
	require.NoError(t, err)
	require.Equal(t, "inputs", c.DataDir)
	require.Equal(t, "input.txt", c.Input)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, []string{"24000", "45000"}, c.Day(1).Want)
	require.Equal(t, map[string]int{"row": 2000000, "limit": 4000000}, c.Day(15).Params)
	require.Equal(t, DayConfig{}, c.Day(3))
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"bad yaml", "days: [1, 2"},
		{"bad params", "days:\n  15:\n    params:\n      row: many\n"},
		{"too many wants", "days:\n  1:\n    want: [\"1\", \"2\", \"3\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			require.Error(t, err)
		})
	}
}
