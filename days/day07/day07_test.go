package day07

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/maisem/aoc2022"
)

func TestAnswers(t *testing.T) {
	tests := []struct {
		input        string
		want1, want2 string
	}{
		{"test1.txt", "95437", "24933642"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := New(filepath.Join("testdata", tt.input))
			got, err := s.Answer1()
			require.NoError(t, err)
			require.Equal(t, tt.want1, got)

			got, err = s.Answer2()
			require.NoError(t, err)
			require.Equal(t, tt.want2, got)
		})
	}
}

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
	return name
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer func(*Solution) (string, error)
		want   error
	}{
		{"cd above root", "$ cd /\n$ cd ..\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"unknown dir", "$ cd /\n$ ls\ndir a\n$ cd b\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"output outside ls", "$ cd /\n14848514 b.txt\n", (*Solution).Answer2, aoc.ErrMalformed},
		{"unknown command", "$ rm -rf /\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"bad size", "$ cd /\n$ ls\nbig b.txt\n", (*Solution).Answer1, aoc.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.answer(New(writeInput(t, tt.input)))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	aoc.SetLogger(zap.New(core))
	t.Cleanup(func() { aoc.SetLogger(nil) })

	input := filepath.Join("testdata", "test1.txt")
	_, err := New(input).Answer2()
	require.NoError(t, err)

	entries := logs.FilterMessage("deleting /d frees 24933642").All()
	require.Len(t, entries, 1)
	require.Equal(t, input, entries[0].ContextMap()["input"])
}
