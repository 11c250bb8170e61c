// Package aoc are quick & dirty utilities for solving the Advent of Code 2022
// puzzles. Every day implements Solvable on top of an embedded Puzzle, which
// binds the day to one input file.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Solvable is implemented by each day's solution.
type Solvable interface {
	Answer1() (string, error)
	Answer2() (string, error)
}

// Configurable is implemented by days that take numeric parameters, such as
// the row to inspect on day 15.
type Configurable interface {
	Configure(params map[string]int) error
}

// Day registers a day's constructor with the runner.
type Day struct {
	Number int
	New    func(filename string) Solvable
}

// InputPath returns the path of the named input for day, following the
// <dataDir>/<day>/<name> convention.
func InputPath(dataDir string, day int, name string) string {
	return filepath.Join(dataDir, strconv.Itoa(day), name)
}

var logger = zap.NewNop()

// SetLogger sets the logger used by Puzzle.Debugf. A nil logger discards
// everything.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

// Puzzle is bound to an input file. It is meant to be embedded in a day's
// Solution; the file is only read when an answer is requested.
type Puzzle struct {
	filename string
}

// NewPuzzle returns a Puzzle bound to filename.
func NewPuzzle(filename string) Puzzle {
	return Puzzle{filename: filename}
}

// Filename returns the path of the bound input.
func (p Puzzle) Filename() string {
	return p.filename
}

// Input returns the raw contents of the input file.
func (p Puzzle) Input() ([]byte, error) {
	return os.ReadFile(p.filename)
}

// Text returns the input with trailing whitespace removed.
func (p Puzzle) Text() (string, error) {
	b, err := p.Input()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0. An error returned by onLine
// stops the scan and is reported as an *InputError carrying the line.
func (p Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	b, err := p.Input()
	if err != nil {
		return err
	}
	s := bufio.NewScanner(bytes.NewReader(b))
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			var ie *InputError
			if errors.As(err, &ie) {
				return err
			}
			return &InputError{File: p.filename, Line: y + 1, Text: s.Text(), Err: err}
		}
	}
	return s.Err()
}

// ForLines calls onLine for each line of input.
func (p Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

// Lines returns every line of input.
func (p Puzzle) Lines() ([]string, error) {
	var lines []string
	err := p.ForLines(func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// Sections returns the groups of lines separated by blank lines. Runs of
// blank lines do not produce empty sections.
func (p Puzzle) Sections() ([][]string, error) {
	lines, err := p.Lines()
	if err != nil {
		return nil, err
	}
	var (
		out [][]string
		cur []string
	)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out, nil
}

// Debugf logs at debug level, tagged with the input file.
func (p Puzzle) Debugf(format string, args ...any) {
	logger.Sugar().With("input", p.filename).Debugf(format, args...)
}

// Or returns the first non-zero element of list, or else the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
