package day05

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/maisem/aoc2022"
)

func TestAnswers(t *testing.T) {
	tests := []struct {
		input        string
		want1, want2 string
	}{
		{"test1.txt", "CMZ", "MCD"},
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
		{"no drawing", "move 1 from 1 to 2\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"too many crates", "[A]\n 1 \n\nmove 2 from 1 to 1\n", (*Solution).Answer2, aoc.ErrMalformed},
		{"no such stack", "[A]\n 1 \n\nmove 1 from 1 to 2\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"bad move", "[A]\n 1 \n\nshift 1 from 1 to 1\n", (*Solution).Answer1, aoc.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.answer(New(writeInput(t, tt.input)))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseStacks(t *testing.T) {
	stacks, err := parseStacks([]string{
		"    [D]",
		"[N] [C]    ",
		"[Z] [M] [P]",
		" 1   2   3 ",
	})
	require.NoError(t, err)
	var got [][]byte
	for _, st := range stacks {
		got = append(got, st.Slice())
	}
	want := [][]byte{[]byte("ZN"), []byte("MCD"), []byte("P")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseStacks mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "NDP", tops(stacks))
}
