package day15

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
		{"test1.txt", "26", "56000011"},
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
		{"missing beacon", "Sensor at x=2, y=18\n", (*Solution).Answer1, aoc.ErrMalformed},
		{"many gaps", "Sensor at x=0, y=0: closest beacon is at x=0, y=1\n", (*Solution).Answer2, aoc.ErrNoSolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.answer(New(writeInput(t, tt.input)))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigure(t *testing.T) {
	s := New("unused")
	require.NoError(t, s.Configure(map[string]int{"row": 2000000, "limit": 4000000}))
	require.Equal(t, 2000000, s.row)
	require.Equal(t, 4000000, s.limit)

	require.Error(t, s.Configure(map[string]int{"col": 1}))
	require.Error(t, s.Configure(map[string]int{"limit": -1}))

	var _ aoc.Configurable = s
}

func TestSingleSensor(t *testing.T) {
	s := New(writeInput(t, "Sensor at x=0, y=0: closest beacon is at x=0, y=1\n"))
	tests := []struct {
		row  int
		want string
	}{
		{0, "3"},
		{1, "0"},
		{-1, "1"},
		{2, "0"},
	}
	for _, tt := range tests {
		s.SetRow(tt.row)
		got, err := s.Answer1()
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "row %d", tt.row)
	}

	s.SetLimit(0)
	_, err := s.Answer2()
	require.ErrorIs(t, err, aoc.ErrNoSolution)
}

func TestSeveralGapsInOneRow(t *testing.T) {
	s := New(writeInput(t, `Sensor at x=0, y=2: closest beacon is at x=0, y=3
Sensor at x=1, y=2: closest beacon is at x=1, y=3
`))
	s.SetLimit(1)
	_, err := s.Answer2()
	require.ErrorIs(t, err, aoc.ErrNoSolution)
	require.ErrorContains(t, err, "several")
}

func TestOtherRows(t *testing.T) {
	s := New(filepath.Join("testdata", "test1.txt"))
	for row, want := range map[int]string{9: "25", 10: "26", 11: "28"} {
		s.SetRow(row)
		got, err := s.Answer1()
		require.NoError(t, err)
		require.Equal(t, want, got, "row %d", row)
	}
}
