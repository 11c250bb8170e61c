// Package day01 solves "Calorie Counting": each elf's snacks are listed as a
// group of lines, and the answers are the largest and top-three group totals.
package day01

import (
	"strconv"

	"github.com/maisem/aoc2022"
)

type Solution struct {
	aoc.Puzzle
}

func New(filename string) *Solution {
	return &Solution{Puzzle: aoc.NewPuzzle(filename)}
}

// elves returns the calorie total carried by each elf.
func (s *Solution) elves() ([]int, error) {
	sections, err := s.Sections()
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, aoc.ErrEmptyInput
	}
	var totals []int
	for _, sec := range sections {
		cals, err := aoc.Ints(sec...)
		if err != nil {
			return nil, err
		}
		totals = append(totals, aoc.Sum(cals...))
	}
	return totals, nil
}

func (s *Solution) Answer1() (string, error) {
	totals, err := s.elves()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(aoc.TopN(totals, 1)[0]), nil
}

// Answer2 sums the three largest totals, or all of them if there are fewer
// than three elves.
func (s *Solution) Answer2() (string, error) {
	totals, err := s.elves()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(aoc.Sum(aoc.TopN(totals, 3)...)), nil
}
