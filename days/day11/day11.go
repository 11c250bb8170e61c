// Package day11 simulates monkeys throwing items around based on how worried
// you are about each one.
package day11

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

type monkey struct {
	items   aoc.Queue[int]
	op      byte // '+' or '*'
	operand int  // ignored when square is set
	square  bool // new = old * old
	divisor int
	ifTrue  int
	ifFalse int

	inspected int
}

func (m *monkey) inspect(old int) int {
	v := m.operand
	if m.square {
		v = old
	}
	if m.op == '+' {
		return old + v
	}
	return old * v
}

// parseMonkey parses one block of notes:
//
//	Monkey 0:
//	  Starting items: 79, 98
//	  Operation: new = old * 19
//	  Test: divisible by 23
//	    If true: throw to monkey 2
//	    If false: throw to monkey 3
func parseMonkey(lines []string) (*monkey, error) {
	if len(lines) != 6 {
		return nil, aoc.Malformed("monkey has %d lines, want 6", len(lines))
	}
	var fields [6]string
	prefixes := []string{"Monkey ", "Starting items:", "Operation: new = old ", "Test: divisible by ", "If true: throw to monkey ", "If false: throw to monkey "}
	for i, p := range prefixes {
		v, err := aoc.CutPrefix(strings.TrimSpace(lines[i]), p)
		if err != nil {
			return nil, err
		}
		fields[i] = strings.TrimSpace(v)
	}

	m := new(monkey)
	items, err := aoc.IntsIn(fields[1])
	if err != nil {
		return nil, err
	}
	m.items = aoc.NewQueue(items...)

	op, operand, ok := strings.Cut(fields[2], " ")
	if !ok || (op != "+" && op != "*") {
		return nil, aoc.Malformed("bad operation %q", fields[2])
	}
	m.op = op[0]
	if operand == "old" {
		m.square = true
	} else if m.operand, err = aoc.Int(operand); err != nil {
		return nil, err
	}

	v, err := aoc.Ints(fields[3], fields[4], fields[5])
	if err != nil {
		return nil, err
	}
	m.divisor, m.ifTrue, m.ifFalse = v[0], v[1], v[2]
	if m.divisor <= 0 {
		return nil, aoc.Malformed("divisor %d", m.divisor)
	}
	return m, nil
}

func (s *Solution) monkeys() ([]*monkey, error) {
	sections, err := s.Sections()
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, aoc.ErrEmptyInput
	}
	var ms []*monkey
	for _, sec := range sections {
		m, err := parseMonkey(sec)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	for i, m := range ms {
		if m.ifTrue < 0 || m.ifTrue >= len(ms) || m.ifFalse < 0 || m.ifFalse >= len(ms) || m.ifTrue == i || m.ifFalse == i {
			return nil, aoc.Malformed("monkey %d throws to an invalid monkey", i)
		}
	}
	return ms, nil
}

// monkeyBusiness plays the given number of rounds and returns the product of
// the two highest inspection counts. With relief, worry is divided by three
// after each inspection; otherwise it is kept modulo the divisors' LCM, which
// preserves every divisibility test.
func (s *Solution) monkeyBusiness(rounds int, relief bool) (string, error) {
	ms, err := s.monkeys()
	if err != nil {
		return "", err
	}
	if len(ms) < 2 {
		return "", aoc.Malformed("need at least two monkeys")
	}
	divisors := make([]int, len(ms))
	for i, m := range ms {
		divisors[i] = m.divisor
	}
	mod := aoc.LCM(divisors...)

	for r := 0; r < rounds; r++ {
		for _, m := range ms {
			m.items.While(func(worry int) bool {
				m.inspected++
				worry = m.inspect(worry)
				if relief {
					worry /= 3
				} else {
					worry %= mod
				}
				target := m.ifFalse
				if worry%m.divisor == 0 {
					target = m.ifTrue
				}
				ms[target].items.Push(worry)
				return true
			})
		}
	}

	counts := make([]int, len(ms))
	for i, m := range ms {
		counts[i] = m.inspected
	}
	s.Debugf("inspections after %d rounds: %v", rounds, counts)
	top := aoc.TopN(counts, 2)
	return strconv.Itoa(top[0] * top[1]), nil
}

func (s *Solution) Answer1() (string, error) {
	return s.monkeyBusiness(20, true)
}

func (s *Solution) Answer2() (string, error) {
	return s.monkeyBusiness(10_000, false)
}
