package day11

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maisem/aoc2022"
)

func TestAnswers(t *testing.T) {
	tests := []struct {
		input        string
		want1, want2 string
	}{
		{"test1.txt", "10605", "2713310158"},
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
		{"short monkey", "Monkey 0:\n  Starting items: 1\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"empty", "", (*Solution).Answer2, aoc.ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.answer(New(writeInput(t, tt.input)))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
