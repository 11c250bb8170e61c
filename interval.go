package aoc

import (
	"cmp"
	"slices"
)

// Interval is the inclusive range [Lo, Hi].
type Interval struct {
	Lo, Hi int
}

// Len returns the number of integers in the interval.
func (i Interval) Len() int {
	if i.Hi < i.Lo {
		return 0
	}
	return i.Hi - i.Lo + 1
}

func (i Interval) Contains(x int) bool {
	return i.Lo <= x && x <= i.Hi
}

// Covers reports whether o lies entirely within i.
func (i Interval) Covers(o Interval) bool {
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Lo <= o.Hi && o.Lo <= i.Hi
}

// MergeIntervals returns the union of in as sorted, disjoint intervals.
// Intervals that touch (such as [1,3] and [4,6]) are merged; empty intervals
// are dropped.
func MergeIntervals(in []Interval) []Interval {
	sorted := slices.DeleteFunc(slices.Clone(in), func(i Interval) bool {
		return i.Len() == 0
	})
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Lo, b.Lo)
	})
	out := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi+1 {
			last.Hi = max(last.Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}
