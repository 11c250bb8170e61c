package aoc

import (
	"errors"
	"strings"

	"golang.org/x/exp/constraints"
)

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// In reports whether p lies inside the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ReadGrid parses the puzzle input with ParseGrid. Errors name the input file.
func ReadGrid[T any](p Puzzle, cell func(r rune) (T, error)) (Grid[T], error) {
	lines, err := p.Lines()
	if err != nil {
		return nil, err
	}
	g, err := ParseGrid(lines, cell)
	var ie *InputError
	if errors.As(err, &ie) && ie.File == "" {
		ie.File = p.Filename()
	}
	return g, err
}

// ParseGrid builds a grid from lines, converting each rune with cell. All
// lines must have the same length.
func ParseGrid[T any](lines []string, cell func(r rune) (T, error)) (Grid[T], error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		for _, r := range line {
			v, err := cell(r)
			if err != nil {
				return nil, &InputError{Line: y + 1, Text: line, Err: err}
			}
			row = append(row, v)
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, &InputError{Line: y + 1, Text: line, Err: Malformed("row has %d cells, want %d", len(row), len(g[0]))}
		}
		g = append(g, row)
	}
	return g, nil
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Render draws the grid one row per line using cell to pick each rune.
func (g Grid[T]) Render(cell func(T) rune) string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteRune(cell(v))
		}
	}
	return sb.String()
}

// EdgePaths returns a path entering the grid from every edge cell, pointing
// inward.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = []Direction{Up, Right, Down, Left}

// ParseDirection parses U/R/D/L (or ^ > v <).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U", "^":
		return Up, nil
	case "R", ">":
		return Right, nil
	case "D", "v":
		return Down, nil
	case "L", "<":
		return Left, nil
	}
	return 0, Malformed("unknown direction %q", s)
}

// Delta returns the unit step for d, with Y growing downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// ForPoints calls f for every point from A to B inclusive, stepping
// horizontally, vertically or diagonally.
func (s Segment) ForPoints(f func(Pt)) {
	p := s.A
	f(p)
	for p != s.B {
		p = p.Toward(s.B)
		f(p)
	}
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Touches reports whether a and b are the same point or neighbors, diagonals
// included.
func (a Pt2[T]) Touches(b Pt2[T]) bool {
	return AbsDiff[T](a.X, b.X) <= 1 && AbsDiff[T](a.Y, b.Y) <= 1
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
