// Package day14 pours sand into a cave of rock paths until it stops.
package day14

import (
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

var source = aoc.Pt{X: 500, Y: 0}

type Solution struct {
	aoc.Puzzle
}

func New(filename string) *Solution {
	return &Solution{Puzzle: aoc.NewPuzzle(filename)}
}

type cave struct {
	blocked map[aoc.Pt]bool // rock and resting sand
	lowest  int             // largest Y of any rock
}

// parse reads rock paths such as "498,4 -> 498,6 -> 496,6".
func (s *Solution) parse() (*cave, error) {
	c := &cave{blocked: map[aoc.Pt]bool{}}
	err := s.ForLines(func(line string) error {
		var path []aoc.Pt
		for _, f := range strings.Split(line, " -> ") {
			xs, ys, ok := strings.Cut(strings.TrimSpace(f), ",")
			if !ok {
				return aoc.Malformed("want x,y")
			}
			v, err := aoc.Ints(xs, ys)
			if err != nil {
				return err
			}
			path = append(path, aoc.Pt{X: v[0], Y: v[1]})
		}
		for i := 1; i < len(path); i++ {
			seg := aoc.Segment{A: path[i-1], B: path[i]}
			if seg.A.X != seg.B.X && seg.A.Y != seg.B.Y {
				return aoc.Malformed("diagonal rock from %v to %v", seg.A, seg.B)
			}
			seg.ForPoints(func(p aoc.Pt) {
				c.blocked[p] = true
				c.lowest = max(c.lowest, p.Y)
			})
		}
		if len(path) == 1 {
			c.blocked[path[0]] = true
			c.lowest = max(c.lowest, path[0].Y)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(c.blocked) == 0 {
		return nil, aoc.ErrEmptyInput
	}
	return c, nil
}

var fallOrder = []aoc.Pt{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// drop lets one unit of sand fall from the source. It returns where the unit
// came to rest, or false if it fell past the lowest rock. With a floor, the
// floor sits two below the lowest rock and nothing falls past it.
func (c *cave) drop(floor bool) (aoc.Pt, bool) {
	p := source
	for {
		if !floor && p.Y > c.lowest {
			return aoc.Pt{}, false
		}
		if floor && p.Y == c.lowest+1 {
			return p, true
		}
		moved := false
		for _, d := range fallOrder {
			if next := p.Add(d); !c.blocked[next] {
				p = next
				moved = true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

// pour drops sand until it falls into the abyss or blocks the source, and
// returns the number of units at rest.
func (s *Solution) pour(floor bool) (string, error) {
	c, err := s.parse()
	if err != nil {
		return "", err
	}
	n := 0
	for !c.blocked[source] {
		p, ok := c.drop(floor)
		if !ok {
			break
		}
		c.blocked[p] = true
		n++
	}
	return strconv.Itoa(n), nil
}

func (s *Solution) Answer1() (string, error) {
	return s.pour(false)
}

func (s *Solution) Answer2() (string, error) {
	return s.pour(true)
}
