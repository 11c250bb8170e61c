// Package day08 looks at a grid of tree heights for visibility and scenic
// scores.
package day08

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

func (s *Solution) grid() (aoc.Grid[int], error) {
	return aoc.ReadGrid(s.Puzzle, aoc.Digit)
}

// Answer1 counts trees visible from outside the grid, walking inward from
// every edge cell and keeping the tallest height seen so far.
func (s *Solution) Answer1() (string, error) {
	g, err := s.grid()
	if err != nil {
		return "", err
	}
	visible := map[aoc.Pt]bool{}
	for _, p := range g.EdgePaths() {
		tallest := -1
		for ok := true; ok; p, ok = g.Move(p) {
			h := g.At(p.Pt)
			if h > tallest {
				visible[p.Pt] = true
				tallest = h
			}
			if tallest == 9 {
				break
			}
		}
	}
	return strconv.Itoa(len(visible)), nil
}

// viewingDistance counts the trees seen from p looking in dir, stopping at
// the first tree at least as tall.
func viewingDistance(g aoc.Grid[int], p aoc.Pt, dir aoc.Direction) int {
	h := g.At(p)
	n := 0
	for cur, ok := g.Move(aoc.Path{Pt: p, Dir: dir}); ok; cur, ok = g.Move(cur) {
		n++
		if g.At(cur.Pt) >= h {
			break
		}
	}
	return n
}

// Answer2 finds the highest scenic score: the product of the viewing
// distances in all four directions.
func (s *Solution) Answer2() (string, error) {
	g, err := s.grid()
	if err != nil {
		return "", err
	}
	best := 0
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			score := 1
			for _, d := range aoc.Directions {
				score *= viewingDistance(g, aoc.Pt{X: x, Y: y}, d)
			}
			best = max(best, score)
		}
	}
	return strconv.Itoa(best), nil
}
