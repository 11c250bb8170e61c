// Package day04 compares the section assignments of pairs of elves.
package day04

import (
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

type Solution struct {
	aoc.Puzzle
}

func New(filename string) *Solution {
	return &Solution{Puzzle: aoc.NewPuzzle(filename)}
}

var errPair = aoc.Malformed("want \"a-b,c-d\"")

// parsePair parses "2-4,6-8".
func parsePair(line string) (a, b aoc.Interval, err error) {
	first, second, ok := strings.Cut(line, ",")
	if !ok {
		return a, b, errPair
	}
	if a, err = parseRange(first); err != nil {
		return a, b, err
	}
	b, err = parseRange(second)
	return a, b, err
}

func parseRange(s string) (aoc.Interval, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return aoc.Interval{}, errPair
	}
	bounds, err := aoc.Ints(lo, hi)
	if err != nil {
		return aoc.Interval{}, err
	}
	return aoc.Interval{Lo: bounds[0], Hi: bounds[1]}, nil
}

func (s *Solution) count(match func(a, b aoc.Interval) bool) (string, error) {
	n := 0
	err := s.ForLines(func(line string) error {
		a, b, err := parsePair(line)
		if err != nil {
			return err
		}
		if match(a, b) {
			n++
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Answer1 counts pairs where one range fully contains the other.
func (s *Solution) Answer1() (string, error) {
	return s.count(func(a, b aoc.Interval) bool {
		return a.Covers(b) || b.Covers(a)
	})
}

// Answer2 counts pairs that overlap at all.
func (s *Solution) Answer2() (string, error) {
	return s.count(aoc.Interval.Overlaps)
}
