// Package day09 simulates a rope whose knots follow its head around a grid.
package day09

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

// follow moves knot one step toward head unless they already touch.
func follow(knot, head aoc.Pt) aoc.Pt {
	if knot.Touches(head) {
		return knot
	}
	return knot.Toward(head)
}

// simulate returns the number of distinct positions visited by the tail of a
// rope with the given number of knots, head included.
func (s *Solution) simulate(knots int) (string, error) {
	rope := make([]aoc.Pt, knots)
	visited := map[aoc.Pt]bool{rope[knots-1]: true}
	err := s.ForLines(func(line string) error {
		d, n, ok := strings.Cut(line, " ")
		if !ok {
			return aoc.Malformed("want \"DIR STEPS\"")
		}
		dir, err := aoc.ParseDirection(d)
		if err != nil {
			return err
		}
		steps, err := aoc.Int(n)
		if err != nil {
			return err
		}
		s.Debugf("head moves %v %d", dir, steps)
		for ; steps > 0; steps-- {
			rope[0] = rope[0].Add(dir.Delta())
			for i := 1; i < knots; i++ {
				rope[i] = follow(rope[i], rope[i-1])
			}
			visited[rope[knots-1]] = true
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(visited)), nil
}

func (s *Solution) Answer1() (string, error) {
	return s.simulate(2)
}

func (s *Solution) Answer2() (string, error) {
	return s.simulate(10)
}
