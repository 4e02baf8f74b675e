package main

import (
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const day1Example = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
`

func mustParseRotations(t testing.TB, s string) []rotation {
	t.Helper()
	rots, err := parseRotations(s)
	if err != nil {
		t.Fatal(err)
	}
	return rots
}

func TestDay1Example(t *testing.T) {
	rots := mustParseRotations(t, day1Example)
	if got, want := day1a(rots), 3; got != want {
		t.Errorf("day1a: got %d; want %d", got, want)
	}
	if got, want := day1b(rots), 6; got != want {
		t.Errorf("day1b: got %d; want %d", got, want)
	}
}

func TestDay1(t *testing.T) {
	for _, tt := range []struct {
		input        string
		part1, part2 int
	}{
		{"R1000", 0, 10},
		{"L1000", 0, 10},
		{"L50", 1, 1},
		{"R50", 1, 1},
		{"L0", 0, 0},
		{"R0\nL0\n", 0, 0},
		{"L50\nL0\nR0", 1, 1}, // staying on 0 isn't a landing
		{"L50\nL100", 2, 2},
		{"L50\nR100", 2, 2},
		{"L50\nL1\nR1", 2, 2},
		{"L150", 1, 2},
		{"R49", 0, 0},
		{"L49\nL2", 0, 1},
	} {
		rots := mustParseRotations(t, tt.input)
		if got := day1a(rots); got != tt.part1 {
			t.Errorf("day1a(%q): got %d; want %d", tt.input, got, tt.part1)
		}
		if got := day1b(rots); got != tt.part2 {
			t.Errorf("day1b(%q): got %d; want %d", tt.input, got, tt.part2)
		}
	}
}

func TestNewDial(t *testing.T) {
	for _, tt := range []struct {
		n    int
		want dial
	}{
		{0, 0},
		{99, 99},
		{100, 0},
		{-1, 99},
		{-100, 0},
		{-250, 50},
		{1050, 50},
	} {
		if got := newDial(tt.n); got != tt.want {
			t.Errorf("newDial(%d): got %d; want %d", tt.n, got, tt.want)
		}
	}
}

// clickCrossings turns the dial one click at a time.
func clickCrossings(d dial, r rotation) (dial, int) {
	delta := 1
	if r.left {
		delta = -1
	}
	var n int
	for i := 0; i < r.n; i++ {
		d = newDial(int(d) + delta)
		if d == 0 {
			n++
		}
	}
	return d, n
}

func TestCrossingsMatchClicks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		d := dial(rng.Intn(dialSize))
		r := rotation{left: rng.Intn(2) == 0, n: rng.Intn(450)}
		wantPos, want := clickCrossings(d, r)
		if got := advance(d, r); got != wantPos {
			t.Fatalf("advance(%d, %s): got %d; want %d", d, r, got, wantPos)
		}
		if got := crossings(d, r); got != want {
			t.Fatalf("crossings(%d, %s): got %d; want %d", d, r, got, want)
		}
	}
}

func TestDay1Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		var b strings.Builder
		for n := 1 + rng.Intn(50); n > 0; n-- {
			dir := "R"
			if rng.Intn(2) == 0 {
				dir = "L"
			}
			b.WriteString(dir)
			b.WriteString(strconv.Itoa(rng.Intn(300)))
			b.WriteString("\n")
		}
		input := b.String()
		rots := mustParseRotations(t, input)

		var landings int
		d := dialStart
		for _, r := range rots {
			d = advance(d, r)
			if r.n > 0 && d == 0 {
				landings++
			}
		}
		part1, part2 := day1a(rots), day1b(rots)
		if part1 != landings {
			t.Fatalf("day1a(%q): got %d; want %d", input, part1, landings)
		}
		if part2 < part1 {
			t.Fatalf("day1b(%q) = %d is less than day1a = %d", input, part2, part1)
		}
		rots2 := mustParseRotations(t, input)
		if day1a(rots2) != part1 || day1b(rots2) != part2 {
			t.Fatalf("different results on second run for %q", input)
		}
	}
}

func TestTrajectoryStops(t *testing.T) {
	rots := mustParseRotations(t, day1Example)
	var n int
	for s := range trajectory(rots) {
		n++
		if s.to == 0 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d steps before first landing; want 3", n)
	}
}

func TestParseRotations(t *testing.T) {
	got := mustParseRotations(t, "L68\nR0\nR1000\n")
	want := []rotation{{left: true, n: 68}, {n: 0}, {n: 1000}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseRotations: got %# v; want %# v", pretty.Formatter(got), pretty.Formatter(want))
	}
}

func TestParseRotationsErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"\n",
		"L",
		"X10",
		"l10",
		"L-5",
		"R+5",
		"R 5",
		"L10\n\nR5",
		"L10,R5",
		"R99999999999",
		"R2147483648",
	} {
		if rots, err := parseRotations(input); err == nil {
			t.Errorf("parseRotations(%q): got %v; want error", input, rots)
		}
	}
}

func TestParseRotationMax(t *testing.T) {
	r, err := parseRotation("L2147483647")
	if err != nil {
		t.Fatal(err)
	}
	if !r.left || r.n != 1<<31-1 {
		t.Errorf("got %s; want L2147483647", r)
	}
}

func BenchmarkDay1(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	rots := make([]rotation, 4000)
	for i := range rots {
		rots[i] = rotation{left: rng.Intn(2) == 0, n: rng.Intn(1000)}
	}
	b.Run("part1", func(b *testing.B) {
		for range b.N {
			day1a(rots)
		}
	})
	b.Run("part2", func(b *testing.B) {
		for range b.N {
			day1b(rots)
		}
	})
}
