// Package day12 finds the shortest climb through a heightmap.
package day12

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

type heightMap struct {
	heights    aoc.Grid[byte]
	start, end aoc.Pt
	lowest     []aoc.Pt // every cell of elevation a, start included
}

func (s *Solution) parse() (*heightMap, error) {
	g, err := aoc.ReadGrid(s.Puzzle, func(r rune) (byte, error) {
		if r == 'S' || r == 'E' || ('a' <= r && r <= 'z') {
			return byte(r), nil
		}
		return 0, aoc.Malformed("unknown elevation %q", r)
	})
	if err != nil {
		return nil, err
	}
	hm := &heightMap{heights: g}
	var haveStart, haveEnd bool
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			switch g.At(p) {
			case 'S':
				hm.start, haveStart = p, true
				g.Set(p, 'a')
			case 'E':
				hm.end, haveEnd = p, true
				g.Set(p, 'z')
			}
			if g.At(p) == 'a' {
				hm.lowest = append(hm.lowest, p)
			}
		}
	}
	if !haveStart || !haveEnd {
		return nil, aoc.Malformed("heightmap needs both S and E")
	}
	return hm, nil
}

// distancesToEnd returns the fewest steps from each cell to the end. The
// graph's edges point downhill (the reverse of a legal climb) so that one
// search from the end covers every starting point.
func (hm *heightMap) distancesToEnd() map[aoc.Pt]int {
	var g aoc.Graph[aoc.Pt]
	size := hm.heights.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			h := hm.heights.At(p)
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if nh, ok := hm.heights.AtOk(n); ok && nh <= h+1 {
					g.AddEdge(n, p, 1)
				}
				return true
			})
		}
	}
	return g.Distances(hm.end)
}

func (s *Solution) Answer1() (string, error) {
	hm, err := s.parse()
	if err != nil {
		return "", err
	}
	d, ok := hm.distancesToEnd()[hm.start]
	if !ok {
		return "", aoc.ErrNoSolution
	}
	return strconv.Itoa(d), nil
}

// Answer2 returns the fewest steps from any cell of elevation a.
func (s *Solution) Answer2() (string, error) {
	hm, err := s.parse()
	if err != nil {
		return "", err
	}
	dist := hm.distancesToEnd()
	best := -1
	for _, p := range hm.lowest {
		if d, ok := dist[p]; ok && (best == -1 || d < best) {
			best = d
		}
	}
	if best == -1 {
		return "", aoc.ErrNoSolution
	}
	return strconv.Itoa(best), nil
}
