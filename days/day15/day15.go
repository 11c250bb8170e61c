// Package day15 works out where a distress beacon can be from the sensors
// that report their closest beacon.
package day15

import (
	"fmt"
	"strconv"

	"github.com/maisem/aoc2022"
)

const tuningMultiplier = 4_000_000

type Solution struct {
	aoc.Puzzle

	row   int
	limit int
}

// New returns a Solution set up for the sample: row 10, limit 20.
func New(filename string) *Solution {
	return &Solution{
		Puzzle: aoc.NewPuzzle(filename),
		row:    10,
		limit:  20,
	}
}

// SetRow sets the row inspected by Answer1.
func (s *Solution) SetRow(row int) {
	s.row = row
}

// SetLimit sets the search area of Answer2 to [0, limit] in both axes.
func (s *Solution) SetLimit(limit int) {
	s.limit = limit
}

// Configure accepts the params "row" and "limit".
func (s *Solution) Configure(params map[string]int) error {
	for k, v := range params {
		switch k {
		case "row":
			s.SetRow(v)
		case "limit":
			if v < 0 {
				return fmt.Errorf("limit %d is negative", v)
			}
			s.SetLimit(v)
		default:
			return fmt.Errorf("unknown param %q", k)
		}
	}
	return nil
}

type sensor struct {
	pos, beacon aoc.Pt
	radius      int
}

// covered returns the columns of row within the sensor's range.
func (s sensor) covered(row int) aoc.Interval {
	w := s.radius - aoc.AbsDiff(s.pos.Y, row)
	return aoc.Interval{Lo: s.pos.X - w, Hi: s.pos.X + w}
}

// parse reads lines like
// "Sensor at x=2, y=18: closest beacon is at x=-2, y=15".
func (s *Solution) parse() ([]sensor, error) {
	var out []sensor
	err := s.ForLines(func(line string) error {
		v, err := aoc.IntsIn(line)
		if err != nil {
			return err
		}
		if len(v) != 4 {
			return aoc.Malformed("want sensor and beacon coordinates")
		}
		sn := sensor{pos: aoc.Pt{X: v[0], Y: v[1]}, beacon: aoc.Pt{X: v[2], Y: v[3]}}
		sn.radius = sn.pos.MDist(sn.beacon)
		out = append(out, sn)
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

func coverage(sensors []sensor, row int) []aoc.Interval {
	ivs := make([]aoc.Interval, 0, len(sensors))
	for _, sn := range sensors {
		ivs = append(ivs, sn.covered(row))
	}
	return aoc.MergeIntervals(ivs)
}

// Answer1 counts the positions on the inspected row where a beacon cannot be.
func (s *Solution) Answer1() (string, error) {
	sensors, err := s.parse()
	if err != nil {
		return "", err
	}
	merged := coverage(sensors, s.row)
	n := 0
	for _, iv := range merged {
		n += iv.Len()
	}
	beacons := map[aoc.Pt]bool{}
	for _, sn := range sensors {
		if sn.beacon.Y != s.row || beacons[sn.beacon] {
			continue
		}
		beacons[sn.beacon] = true
		for _, iv := range merged {
			if iv.Contains(sn.beacon.X) {
				n--
				break
			}
		}
	}
	return strconv.Itoa(n), nil
}

// Answer2 finds the only position within the search area that no sensor
// covers and returns its tuning frequency, x*4000000 + y.
func (s *Solution) Answer2() (string, error) {
	sensors, err := s.parse()
	if err != nil {
		return "", err
	}
	area := aoc.Interval{Lo: 0, Hi: s.limit}
	// Stop at the second uncovered position; one more is enough to reject.
	var found []aoc.Pt
	for y := area.Lo; y <= area.Hi && len(found) < 2; y++ {
		x := area.Lo
		uncovered := func(to int) {
			for ; x <= to && len(found) < 2; x++ {
				found = append(found, aoc.Pt{X: x, Y: y})
				s.Debugf("uncovered position %v", found[len(found)-1])
			}
		}
		for _, iv := range coverage(sensors, y) {
			if iv.Hi < x {
				continue
			}
			if iv.Lo > area.Hi {
				break
			}
			uncovered(iv.Lo - 1)
			x = max(x, iv.Hi+1)
		}
		uncovered(area.Hi)
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: every position is covered", aoc.ErrNoSolution)
	case 1:
	default:
		return "", fmt.Errorf("%w: several uncovered positions", aoc.ErrNoSolution)
	}
	p := found[0]
	return strconv.Itoa(p.X*tuningMultiplier + p.Y), nil
}
