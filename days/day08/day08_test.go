package day08

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
		{"test1.txt", "21", "8"},
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
		{"empty", "", (*Solution).Answer1, aoc.ErrEmptyInput},
		{"ragged", "123\n45\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"not a height", "12\n3x\n", (*Solution).Answer2, aoc.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.answer(New(writeInput(t, tt.input)))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorNamesFile(t *testing.T) {
	name := writeInput(t, "30373\n25512\n6533\n")
	_, err := New(name).Answer1()
	var ie *aoc.InputError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, name, ie.File)
	require.Equal(t, 3, ie.Line)
}
