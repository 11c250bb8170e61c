// Package day03 finds the items shared between rucksack compartments and
// between groups of three elves.
package day03

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

func priority(c byte) (int, error) {
	switch {
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 1, nil
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 27, nil
	}
	return 0, aoc.Malformed("not an item: %q", c)
}

// common returns the first byte of first that appears in every one of rest.
func common(first string, rest ...string) (byte, error) {
	for i := 0; i < len(first); i++ {
		c := first[i]
		shared := true
		for _, r := range rest {
			if strings.IndexByte(r, c) < 0 {
				shared = false
				break
			}
		}
		if shared {
			return c, nil
		}
	}
	return 0, aoc.Malformed("no common item")
}

func (s *Solution) Answer1() (string, error) {
	sum := 0
	err := s.ForLines(func(line string) error {
		if len(line)%2 != 0 {
			return aoc.Malformed("odd number of items")
		}
		c, err := common(line[:len(line)/2], line[len(line)/2:])
		if err != nil {
			return err
		}
		p, err := priority(c)
		sum += p
		return err
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sum), nil
}

func (s *Solution) Answer2() (string, error) {
	lines, err := s.Lines()
	if err != nil {
		return "", err
	}
	if len(lines)%3 != 0 {
		return "", aoc.Malformed("%d rucksacks do not split into groups of three", len(lines))
	}
	sum := 0
	for i := 0; i < len(lines); i += 3 {
		c, err := common(lines[i], lines[i+1], lines[i+2])
		if err != nil {
			return "", &aoc.InputError{File: s.Filename(), Line: i + 1, Text: lines[i], Err: err}
		}
		p, err := priority(c)
		if err != nil {
			return "", err
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}
