// Package grid has small 2D helpers for grid-shaped puzzle inputs.
//
// Coordinates have x increasing to the right and y increasing downward, so
// row y of the input is y points below row 0.
package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// All lists the directions in clockwise order starting from North.
var All = [4]Direction{North, East, South, West}

var dirNames = [4]string{"N", "E", "S", "W"}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Delta is the unit step in direction d.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, 1}
	case West:
		return Point{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) TurnRight() Direction { return (d + 1) % 4 }
func (d Direction) TurnLeft() Direction  { return (d + 3) % 4 }
func (d Direction) Opposite() Direction  { return (d + 2) % 4 }

// Point is a 2D integer coordinate.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Step returns the point one unit from p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Delta()) }

// Neighbors4 returns the orthogonal neighbors of p in the order of All.
func (p Point) Neighbors4() []Point {
	ns := make([]Point, 0, 4)
	for _, d := range All {
		ns = append(ns, p.Step(d))
	}
	return ns
}

// Neighbors8 returns the orthogonal and diagonal neighbors of p in
// row-major order.
func (p Point) Neighbors8() []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				ns = append(ns, Point{p.X + dx, p.Y + dy})
			}
		}
	}
	return ns
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Grid is a rectangular grid of cells stored in row-major order.
type Grid[T any] struct {
	Width  int
	Height int
	cells  []T
}

// New makes a Grid from rows, which must all have the same length.
func New[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{Height: len(rows)}
	if len(rows) > 0 {
		g.Width = len(rows[0])
	}
	g.cells = make([]T, 0, g.Width*g.Height)
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("row %d has length %d; want %d", y, len(row), g.Width)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// ParseRunes makes a Grid with one cell per character of each line of s.
func ParseRunes(s string) (*Grid[rune], error) {
	var rows [][]rune
	for _, line := range Lines(s) {
		rows = append(rows, []rune(line))
	}
	return New(rows)
}

// Lines splits s into lines, dropping "\n" and "\r\n" terminators. A final
// terminator doesn't start another line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Get returns the cell at p. If p is out of bounds, Get returns the zero
// value and false.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.Width+p.X], true
}

// Set sets the cell at p and reports whether p is in bounds.
func (g *Grid[T]) Set(p Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.Width+p.X] = v
	return true
}

// Points yields every point of g in row-major order.
func (g *Grid[T]) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// Find returns the first point, in row-major order, whose cell satisfies
// match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for p := range g.Points() {
		v, _ := g.Get(p)
		if match(v) {
			return p, true
		}
	}
	return Point{}, false
}
