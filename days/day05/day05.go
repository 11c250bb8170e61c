// Package day05 rearranges stacks of crates following a list of moves.
package day05

import (
	"strings"

	"github.com/maisem/aoc2022"
)

type Solution struct {
	aoc.Puzzle
}

func New(filename string) *Solution {
	return &Solution{Puzzle: aoc.NewPuzzle(filename)}
}

type move struct {
	n, from, to int // from and to are 0-based
}

// parse splits the input into the starting stacks and the moves.
func (s *Solution) parse() ([]*aoc.Stack[byte], []move, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, nil, err
	}
	blank := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			blank = i
			break
		}
	}
	if blank < 1 {
		return nil, nil, aoc.Malformed("missing crate drawing")
	}
	stacks, err := parseStacks(lines[:blank])
	if err != nil {
		return nil, nil, err
	}
	var moves []move
	for i, l := range lines[blank+1:] {
		if l == "" {
			continue
		}
		m, err := parseMove(l, len(stacks))
		if err != nil {
			return nil, nil, &aoc.InputError{File: s.Filename(), Line: blank + i + 2, Text: l, Err: err}
		}
		moves = append(moves, m)
	}
	return stacks, moves, nil
}

// parseStacks reads a drawing such as
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// Crate letters sit at columns 1, 5, 9, ... and the last line numbers the
// stacks.
func parseStacks(drawing []string) ([]*aoc.Stack[byte], error) {
	labels := strings.Fields(drawing[len(drawing)-1])
	if len(labels) == 0 {
		return nil, aoc.Malformed("no stack labels")
	}
	stacks := make([]*aoc.Stack[byte], len(labels))
	for i := range stacks {
		stacks[i] = new(aoc.Stack[byte])
	}
	for y := len(drawing) - 2; y >= 0; y-- {
		line := drawing[y]
		for i := range stacks {
			x := 4*i + 1
			if x >= len(line) || line[x] == ' ' {
				continue
			}
			if line[x-1] != '[' || x+1 >= len(line) || line[x+1] != ']' {
				return nil, &aoc.InputError{Line: y + 1, Text: line, Err: aoc.Malformed("bad crate in stack %d", i+1)}
			}
			stacks[i].Push(line[x])
		}
	}
	return stacks, nil
}

// parseMove parses "move 1 from 2 to 1".
func parseMove(line string, numStacks int) (move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return move{}, aoc.Malformed("want \"move N from A to B\"")
	}
	v, err := aoc.Ints(f[1], f[3], f[5])
	if err != nil {
		return move{}, err
	}
	m := move{n: v[0], from: v[1] - 1, to: v[2] - 1}
	if m.from < 0 || m.from >= numStacks || m.to < 0 || m.to >= numStacks {
		return move{}, aoc.Malformed("no such stack")
	}
	return m, nil
}

func tops(stacks []*aoc.Stack[byte]) string {
	var sb strings.Builder
	for _, st := range stacks {
		if c, ok := st.Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// rearrange applies every move. With oneAtATime crates are moved singly,
// reversing their order; otherwise a move keeps the order.
func (s *Solution) rearrange(oneAtATime bool) (string, error) {
	stacks, moves, err := s.parse()
	if err != nil {
		return "", err
	}
	for _, m := range moves {
		src, dst := stacks[m.from], stacks[m.to]
		crates, ok := src.PopN(m.n)
		if !ok {
			return "", aoc.Malformed("move %d from stack %d holding %d crates", m.n, m.from+1, src.Len())
		}
		if oneAtATime {
			for i := len(crates) - 1; i >= 0; i-- {
				dst.Push(crates[i])
			}
		} else {
			dst.PushN(crates...)
		}
	}
	return tops(stacks), nil
}

func (s *Solution) Answer1() (string, error) {
	return s.rearrange(true)
}

func (s *Solution) Answer2() (string, error) {
	return s.rearrange(false)
}
