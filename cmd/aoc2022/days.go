package main

import (
	"github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/days/day01"
	"github.com/maisem/aoc2022/days/day02"
	"github.com/maisem/aoc2022/days/day03"
	"github.com/maisem/aoc2022/days/day04"
	"github.com/maisem/aoc2022/days/day05"
	"github.com/maisem/aoc2022/days/day06"
	"github.com/maisem/aoc2022/days/day07"
	"github.com/maisem/aoc2022/days/day08"
	"github.com/maisem/aoc2022/days/day09"
	"github.com/maisem/aoc2022/days/day10"
	"github.com/maisem/aoc2022/days/day11"
	"github.com/maisem/aoc2022/days/day12"
	"github.com/maisem/aoc2022/days/day13"
	"github.com/maisem/aoc2022/days/day14"
	"github.com/maisem/aoc2022/days/day15"
)

var days = []aoc.Day{
	{Number: 1, New: func(f string) aoc.Solvable { return day01.New(f) }},
	{Number: 2, New: func(f string) aoc.Solvable { return day02.New(f) }},
	{Number: 3, New: func(f string) aoc.Solvable { return day03.New(f) }},
	{Number: 4, New: func(f string) aoc.Solvable { return day04.New(f) }},
	{Number: 5, New: func(f string) aoc.Solvable { return day05.New(f) }},
	{Number: 6, New: func(f string) aoc.Solvable { return day06.New(f) }},
	{Number: 7, New: func(f string) aoc.Solvable { return day07.New(f) }},
	{Number: 8, New: func(f string) aoc.Solvable { return day08.New(f) }},
	{Number: 9, New: func(f string) aoc.Solvable { return day09.New(f) }},
	{Number: 10, New: func(f string) aoc.Solvable { return day10.New(f) }},
	{Number: 11, New: func(f string) aoc.Solvable { return day11.New(f) }},
	{Number: 12, New: func(f string) aoc.Solvable { return day12.New(f) }},
	{Number: 13, New: func(f string) aoc.Solvable { return day13.New(f) }},
	{Number: 14, New: func(f string) aoc.Solvable { return day14.New(f) }},
	{Number: 15, New: func(f string) aoc.Solvable { return day15.New(f) }},
}
