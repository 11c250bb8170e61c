package aoc

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, Malformed("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	if len(integers) == 1 {
		return integers[0]
	}

	lcm := func(a, b int) int {
		return a * b / GCD(a, b)
	}

	result := 1
	for i := 0; i < len(integers); i++ {
		result = lcm(result, integers[i])
	}

	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("not an integer: %q", s)
	}
	return n, nil
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	var out []int
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

var intRx = regexp.MustCompile(`-?\d+`)

// IntsIn returns every (optionally negative) integer embedded in s, in order.
func IntsIn(s string) ([]int, error) {
	return Ints(intRx.FindAllString(s, -1)...)
}

// CutPrefix returns s without prefix. It is an error for s not to start with
// prefix.
func CutPrefix(s, prefix string) (string, error) {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", Malformed("want prefix %q", prefix)
	}
	return s1, nil
}
