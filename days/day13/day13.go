// Package day13 decodes distress signal packets, which are nested lists of
// integers, and puts them in order.
package day13

import (
	"slices"
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

// packet is either an integer or, when list is non-nil, a list.
type packet struct {
	value int
	list  []*packet
}

func (p *packet) isList() bool { return p.list != nil }

func (p *packet) String() string {
	if !p.isList() {
		return strconv.Itoa(p.value)
	}
	parts := make([]string, len(p.list))
	for i, c := range p.list {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// parsePacket parses a packet such as [1,[2,[]],3] using an explicit stack of
// open lists.
func parsePacket(s string) (*packet, error) {
	if !strings.HasPrefix(s, "[") {
		return nil, aoc.Malformed("packet must start with [")
	}
	var open aoc.Stack[*packet]
	var root *packet
	var prev byte // last token: '[', ']', ',' or '0' for an integer
	for i := 0; i < len(s); i++ {
		if root != nil {
			return nil, aoc.Malformed("trailing data at %d", i)
		}
		// An element may only start the input, open a list or follow a comma.
		elem := i == 0 || prev == '[' || prev == ','
		switch c := s[i]; {
		case c == '[':
			if !elem {
				return nil, aoc.Malformed("missing , before [ at %d", i)
			}
			open.Push(&packet{list: []*packet{}})
			prev = '['
		case c == ']':
			if prev == ',' {
				return nil, aoc.Malformed("unexpected ] after , at %d", i)
			}
			prev = ']'
			done, ok := open.Pop()
			if !ok {
				return nil, aoc.Malformed("unbalanced ] at %d", i)
			}
			if parent, ok := open.Peek(); ok {
				parent.list = append(parent.list, done)
			} else {
				root = done
			}
		case c == ',':
			if prev != ']' && prev != '0' {
				return nil, aoc.Malformed("unexpected , at %d", i)
			}
			prev = ','
		case isDigit(c):
			if !elem {
				return nil, aoc.Malformed("missing , before integer at %d", i)
			}
			prev = '0'
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			v, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, aoc.Malformed("bad integer at %d", i)
			}
			parent, _ := open.Peek()
			parent.list = append(parent.list, &packet{value: v})
			i = j - 1
		default:
			return nil, aoc.Malformed("unexpected %q at %d", c, i)
		}
	}
	if root == nil {
		return nil, aoc.Malformed("unterminated packet")
	}
	return root, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// compare orders packets: integers by value, lists element by element and
// then by length. An integer compared with a list is treated as a list
// holding just that integer.
func compare(a, b *packet) int {
	switch {
	case !a.isList() && !b.isList():
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		}
		return 0
	case !a.isList():
		return compare(&packet{list: []*packet{a}}, b)
	case !b.isList():
		return compare(a, &packet{list: []*packet{b}})
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := compare(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}
	return len(a.list) - len(b.list)
}

func (s *Solution) packets() ([]*packet, error) {
	var out []*packet
	err := s.ForLines(func(line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		p, err := parsePacket(line)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, aoc.ErrEmptyInput
	}
	return out, nil
}

// Answer1 sums the 1-based indices of the pairs already in the right order.
func (s *Solution) Answer1() (string, error) {
	sections, err := s.Sections()
	if err != nil {
		return "", err
	}
	if len(sections) == 0 {
		return "", aoc.ErrEmptyInput
	}
	sum := 0
	for i, pair := range sections {
		if len(pair) != 2 {
			return "", aoc.Malformed("pair %d has %d packets", i+1, len(pair))
		}
		left, err := parsePacket(strings.TrimSpace(pair[0]))
		if err != nil {
			return "", err
		}
		right, err := parsePacket(strings.TrimSpace(pair[1]))
		if err != nil {
			return "", err
		}
		if compare(left, right) < 0 {
			sum += i + 1
		}
	}
	return strconv.Itoa(sum), nil
}

// Answer2 sorts every packet together with the divider packets [[2]] and
// [[6]] and multiplies the dividers' 1-based positions.
func (s *Solution) Answer2() (string, error) {
	ps, err := s.packets()
	if err != nil {
		return "", err
	}
	var dividers []*packet
	for _, d := range []string{"[[2]]", "[[6]]"} {
		p, err := parsePacket(d)
		if err != nil {
			return "", err
		}
		dividers = append(dividers, p)
	}
	ps = append(ps, dividers...)
	slices.SortStableFunc(ps, compare)
	key := 1
	for i, p := range ps {
		if slices.Contains(dividers, p) {
			key *= i + 1
		}
	}
	return strconv.Itoa(key), nil
}
