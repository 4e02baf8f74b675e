package main

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

func init() {
	register(1, parseRotations, day1a, day1b)
}

// day1a counts the rotations that leave the dial pointing at 0.
func day1a(rots []rotation) int {
	var n int
	for s := range trajectory(rots) {
		if s.landed() {
			n++
		}
	}
	return n
}

// day1b counts every time the dial points at 0, including during a
// rotation.
func day1b(rots []rotation) int {
	var n int
	for s := range trajectory(rots) {
		n += crossings(s.from, s.rot)
	}
	return n
}

const dialSize = 100

// A dial is a position on a dial numbered 0 through 99.
type dial int

const dialStart dial = 50

func newDial(n int) dial {
	n %= dialSize
	if n < 0 {
		n += dialSize
	}
	return dial(n)
}

type rotation struct {
	left bool
	n    int
}

func (r rotation) String() string {
	if r.left {
		return "L" + strconv.Itoa(r.n)
	}
	return "R" + strconv.Itoa(r.n)
}

func advance(d dial, r rotation) dial {
	if r.left {
		return newDial(int(d) - r.n)
	}
	return newDial(int(d) + r.n)
}

// crossings reports how many times the dial points at 0 while applying r
// to d, counting the final position.
func crossings(d dial, r rotation) int {
	if r.n == 0 {
		return 0
	}
	if !r.left {
		return (int(d) + r.n) / dialSize
	}
	dist := int(d) // clicks until the first 0
	if dist == 0 {
		dist = dialSize
	}
	if r.n < dist {
		return 0
	}
	return 1 + (r.n-dist)/dialSize
}

type step struct {
	from dial
	rot  rotation
	to   dial
}

// landed reports whether s moved the dial and left it at 0. A zero-length
// rotation never lands, even when the dial is already at 0, so this is
// stricter than checking s.to alone and keeps landings a subset of
// crossings.
func (s step) landed() bool {
	return s.rot.n > 0 && s.to == 0
}

// trajectory yields the step for each rotation, starting from dialStart.
func trajectory(rots []rotation) iter.Seq[step] {
	return func(yield func(step) bool) {
		d := dialStart
		for _, r := range rots {
			s := step{from: d, rot: r, to: advance(d, r)}
			if !yield(s) {
				return
			}
			d = s.to
		}
	}
}

func parseRotations(input string) ([]rotation, error) {
	var rots []rotation
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		r, err := parseRotation(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err)
		}
		rots = append(rots, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rots) == 0 {
		return nil, errors.New("no rotations")
	}
	return rots, nil
}

func parseRotation(s string) (rotation, error) {
	if len(s) < 2 {
		return rotation{}, fmt.Errorf("bad rotation %q", s)
	}
	var r rotation
	switch s[0] {
	case 'L':
		r.left = true
	case 'R':
	default:
		return rotation{}, fmt.Errorf("bad direction in rotation %q", s)
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return rotation{}, fmt.Errorf("rotation %q contains non-digit %q", s, c)
		}
	}
	n, err := strconv.ParseInt(s[1:], 10, 32)
	if err != nil {
		return rotation{}, fmt.Errorf("bad distance in rotation %q: %s", s, err)
	}
	r.n = int(n)
	return r, nil
}
