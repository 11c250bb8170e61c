// Package day02 scores a rock paper scissors strategy guide.
package day02

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

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// score is the points for choosing the shape.
func (s shape) score() int { return int(s) + 1 }

// beats returns the shape that s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

// losesTo returns the shape that defeats s.
func (s shape) losesTo() shape { return (s + 1) % 3 }

func outcome(me, them shape) int {
	switch {
	case me == them:
		return 3
	case me.beats() == them:
		return 6
	}
	return 0
}

// parseLine parses "A X" into the opponent's column (A-C) and the second
// column (X-Z), both as 0-2.
func parseLine(line string) (them, second int, err error) {
	if len(line) != 3 || line[1] != ' ' {
		return 0, 0, aoc.Malformed("want \"<A-C> <X-Z>\"")
	}
	them = int(line[0]) - 'A'
	second = int(line[2]) - 'X'
	if them < 0 || them > 2 || second < 0 || second > 2 {
		return 0, 0, aoc.Malformed("unrecognized move %q", line)
	}
	return them, second, nil
}

func (s *Solution) score(round func(them shape, second int) int) (string, error) {
	total := 0
	err := s.ForLines(func(line string) error {
		them, second, err := parseLine(line)
		if err != nil {
			return err
		}
		total += round(shape(them), second)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total), nil
}

// Answer1 reads the second column as the shape to play.
func (s *Solution) Answer1() (string, error) {
	return s.score(func(them shape, second int) int {
		me := shape(second)
		return me.score() + outcome(me, them)
	})
}

// Answer2 reads the second column as the outcome: X lose, Y draw, Z win.
func (s *Solution) Answer2() (string, error) {
	return s.score(func(them shape, second int) int {
		var me shape
		switch second {
		case 0:
			me = them.beats()
		case 1:
			me = them
		case 2:
			me = them.losesTo()
		}
		return me.score() + outcome(me, them)
	})
}
