package aoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0o644))
	return name
}

func TestInputPath(t *testing.T) {
	tests := []struct {
		dir  string
		day  int
		name string
		want string
	}{
		{"data", 1, "input.txt", filepath.Join("data", "1", "input.txt")},
		{"data", 15, "test1.txt", filepath.Join("data", "15", "test1.txt")},
		{"/tmp/aoc", 7, "input.txt", filepath.Join("/tmp/aoc", "7", "input.txt")},
	}
	for _, tt := range tests {
		if got := InputPath(tt.dir, tt.day, tt.name); got != tt.want {
			t.Errorf("InputPath(%q, %d, %q) = %q, want %q", tt.dir, tt.day, tt.name, got, tt.want)
		}
	}
}

func TestPuzzleText(t *testing.T) {
	p := NewPuzzle(writeInput(t, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n\n"))
	got, err := p.Text()
	require.NoError(t, err)
	require.Equal(t, "mjqjpqmgbljsphdztnvjfqwrcgsmlb", got)
}

func TestPuzzleMissingFile(t *testing.T) {
	p := NewPuzzle(filepath.Join(t.TempDir(), "nope.txt"))
	_, err := p.Lines()
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestPuzzleSections(t *testing.T) {
	p := NewPuzzle(writeInput(t, "1000\n2000\n\n\n4000\n\n5000\n6000\n"))
	got, err := p.Sections()
	require.NoError(t, err)
	want := [][]string{{"1000", "2000"}, {"4000"}, {"5000", "6000"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sections mismatch (-want +got):\n%s", diff)
	}
}

func TestForLinesYError(t *testing.T) {
	name := writeInput(t, "a\nb\nc\n")
	p := NewPuzzle(name)
	boom := errors.New("boom")
	var seen []int
	err := p.ForLinesY(func(y int, line string) error {
		seen = append(seen, y)
		if line == "b" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	var ie *InputError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, InputError{File: name, Line: 2, Text: "b", Err: boom}, *ie)
	require.Equal(t, []int{0, 1}, seen)
}

func TestForLinesKeepsInputError(t *testing.T) {
	p := NewPuzzle(writeInput(t, "a\nb\n"))
	inner := &InputError{Line: 7, Text: "x", Err: ErrMalformed}
	err := p.ForLines(func(string) error { return inner })
	require.Same(t, inner, err)
}

func TestInputErrorString(t *testing.T) {
	tests := []struct {
		err  *InputError
		want string
	}{
		{&InputError{Line: 3, Text: "A Q", Err: Malformed("bad shape")}, `line 3: "A Q": malformed input: bad shape`},
		{&InputError{File: "in.txt", Line: 1, Text: "", Err: ErrEmptyInput}, `in.txt:1: "": empty input`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestOr(t *testing.T) {
	if got := Or(0, 3, 5); got != 3 {
		t.Errorf("Or(0, 3, 5) = %d, want 3", got)
	}
	if got := Or("", ""); got != "" {
		t.Errorf(`Or("", "") = %q, want ""`, got)
	}
	if got := Or("data", "other"); got != "data" {
		t.Errorf(`Or("data", "other") = %q, want "data"`, got)
	}
}
