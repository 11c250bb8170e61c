// Package day06 finds start-of-packet and start-of-message markers in a
// datastream.
package day06

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

// marker returns the number of characters read when the last size characters
// are first all distinct.
func marker(stream string, size int) (int, error) {
	var counts [256]int
	distinct := 0
	for i := 0; i < len(stream); i++ {
		if counts[stream[i]] == 0 {
			distinct++
		}
		counts[stream[i]]++
		if i >= size {
			old := stream[i-size]
			counts[old]--
			if counts[old] == 0 {
				distinct--
			}
		}
		if distinct == size {
			return i + 1, nil
		}
	}
	return 0, aoc.ErrNoSolution
}

func (s *Solution) find(size int) (string, error) {
	stream, err := s.Text()
	if err != nil {
		return "", err
	}
	if stream == "" {
		return "", aoc.ErrEmptyInput
	}
	n, err := marker(stream, size)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (s *Solution) Answer1() (string, error) {
	return s.find(4)
}

func (s *Solution) Answer2() (string, error) {
	return s.find(14)
}
