// Package day10 runs the handheld's CPU and draws its CRT.
package day10

import (
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

const (
	screenWidth  = 40
	screenHeight = 6
)

type Solution struct {
	aoc.Puzzle
}

func New(filename string) *Solution {
	return &Solution{Puzzle: aoc.NewPuzzle(filename)}
}

// run executes the program, calling onCycle with the 1-based cycle number
// and the value of X during that cycle.
func (s *Solution) run(onCycle func(cycle, x int)) error {
	x, cycle := 1, 0
	tick := func() {
		cycle++
		onCycle(cycle, x)
	}
	return s.ForLines(func(line string) error {
		op, arg, _ := strings.Cut(line, " ")
		switch op {
		case "noop":
			tick()
		case "addx":
			v, err := aoc.Int(arg)
			if err != nil {
				return err
			}
			tick()
			tick()
			x += v
		default:
			return aoc.Malformed("unknown instruction %q", op)
		}
		return nil
	})
}

// Answer1 sums the signal strength during cycles 20, 60, ..., 220.
func (s *Solution) Answer1() (string, error) {
	sum := 0
	err := s.run(func(cycle, x int) {
		if cycle <= 220 && cycle%screenWidth == 20 {
			sum += cycle * x
		}
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sum), nil
}

// Answer2 renders the CRT: a pixel is lit when the three-wide sprite centred
// on X covers the column being drawn.
func (s *Solution) Answer2() (string, error) {
	screen := aoc.MakeGrid[bool](screenWidth, screenHeight)
	err := s.run(func(cycle, x int) {
		i := cycle - 1
		if i >= screenWidth*screenHeight {
			return
		}
		p := aoc.Pt{X: i % screenWidth, Y: i / screenWidth}
		if aoc.AbsDiff(p.X, x) <= 1 {
			screen.Set(p, true)
		}
	})
	if err != nil {
		return "", err
	}
	return screen.Render(func(lit bool) rune {
		if lit {
			return '#'
		}
		return '.'
	}), nil
}
