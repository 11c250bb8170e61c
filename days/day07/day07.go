// Package day07 rebuilds a filesystem from a terminal transcript and sizes its
// directories.
package day07

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2022"
)

const (
	diskSize   = 70_000_000
	neededFree = 30_000_000
	smallDir   = 100_000
)

type Solution struct {
	aoc.Puzzle
}

func New(filename string) *Solution {
	return &Solution{Puzzle: aoc.NewPuzzle(filename)}
}

// node is a file or directory. Nodes live in fileSystem.nodes and refer to
// each other by index.
type node struct {
	name     string
	dir      bool
	size     int // for files; directories are sized by fileSystem.sizes
	parent   int // -1 for the root
	children []int
}

type fileSystem struct {
	nodes []node // nodes[0] is "/"
}

func newFileSystem() *fileSystem {
	return &fileSystem{nodes: []node{{name: "/", dir: true, parent: -1}}}
}

func (fs *fileSystem) child(dir int, name string) (int, bool) {
	for _, c := range fs.nodes[dir].children {
		if fs.nodes[c].name == name {
			return c, true
		}
	}
	return 0, false
}

// add creates name under dir, or returns the existing entry if the directory
// was already listed.
func (fs *fileSystem) add(dir int, name string, isDir bool, size int) int {
	if c, ok := fs.child(dir, name); ok {
		return c
	}
	fs.nodes = append(fs.nodes, node{name: name, dir: isDir, size: size, parent: dir})
	id := len(fs.nodes) - 1
	fs.nodes[dir].children = append(fs.nodes[dir].children, id)
	return id
}

// sizes returns the total size of every directory, keyed by node index.
func (fs *fileSystem) sizes() map[int]int {
	out := map[int]int{}
	var walk func(int) int
	walk = func(i int) int {
		n := fs.nodes[i]
		if !n.dir {
			return n.size
		}
		total := 0
		for _, c := range n.children {
			total += walk(c)
		}
		out[i] = total
		return total
	}
	walk(0)
	return out
}

// path returns the absolute path of node i.
func (fs *fileSystem) path(i int) string {
	if i == 0 {
		return "/"
	}
	var parts []string
	for ; i > 0; i = fs.nodes[i].parent {
		parts = append(parts, fs.nodes[i].name)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

func (s *Solution) build() (*fileSystem, error) {
	fs := newFileSystem()
	cwd := 0
	listing := false
	err := s.ForLines(func(line string) error {
		f := strings.Fields(line)
		switch {
		case len(f) == 0:
			return nil
		case f[0] == "$":
			listing = false
			if len(f) == 2 && f[1] == "ls" {
				listing = true
				return nil
			}
			if len(f) != 3 || f[1] != "cd" {
				return aoc.Malformed("unknown command")
			}
			switch f[2] {
			case "/":
				cwd = 0
			case "..":
				if cwd == 0 {
					return aoc.Malformed("cd .. from /")
				}
				cwd = fs.nodes[cwd].parent
			default:
				c, ok := fs.child(cwd, f[2])
				if !ok || !fs.nodes[c].dir {
					return aoc.Malformed("no directory %q in %s", f[2], fs.path(cwd))
				}
				cwd = c
			}
		case !listing:
			return aoc.Malformed("output outside of ls")
		case len(f) != 2:
			return aoc.Malformed("want \"dir NAME\" or \"SIZE NAME\"")
		case f[0] == "dir":
			fs.add(cwd, f[1], true, 0)
		default:
			size, err := aoc.Int(f[0])
			if err != nil {
				return err
			}
			fs.add(cwd, f[1], false, size)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Debugf("filesystem has %d entries", len(fs.nodes))
	return fs, nil
}

// Answer1 sums the sizes of all directories of at most 100000.
func (s *Solution) Answer1() (string, error) {
	fs, err := s.build()
	if err != nil {
		return "", err
	}
	sum := 0
	for _, size := range fs.sizes() {
		if size <= smallDir {
			sum += size
		}
	}
	return strconv.Itoa(sum), nil
}

// Answer2 finds the smallest directory whose deletion frees enough space for
// the update.
func (s *Solution) Answer2() (string, error) {
	fs, err := s.build()
	if err != nil {
		return "", err
	}
	sizes := fs.sizes()
	need := neededFree - (diskSize - sizes[0])
	best, bestDir := -1, -1
	for dir, size := range sizes {
		if size >= need && (best == -1 || size < best) {
			best, bestDir = size, dir
		}
	}
	if best == -1 {
		return "", aoc.ErrNoSolution
	}
	s.Debugf("deleting %s frees %d", fs.path(bestDir), best)
	return strconv.Itoa(best), nil
}
