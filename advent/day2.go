package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(2, parseIDRanges, day2a, day2b)
}

// day2a sums the IDs made of some digit sequence repeated exactly twice.
func day2a(ranges []idRange) int {
	return sumRepeatedIDs(ranges, func(reps int) bool { return reps == 2 })
}

// day2b sums the IDs made of some digit sequence repeated at least twice.
func day2b(ranges []idRange) int {
	return sumRepeatedIDs(ranges, func(reps int) bool { return reps >= 2 })
}

// IDs are limited to what fits in pow10.
const maxIDDigits = 18

var pow10 [maxIDDigits + 1]int64

func init() {
	pow10[0] = 1
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

type idRange struct {
	lo, hi int64 // inclusive
}

func numDigits(n int64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// sumRepeatedIDs sums the distinct IDs in ranges that consist of a digit
// pattern repeated some number of times accepted by allow.
//
// An L-digit ID that repeats a k-digit pattern p is p*m where
// m = (10^L - 1) / (10^k - 1) (e.g. 123123 = 123*1001), so rather than
// checking every ID we walk the patterns that land in range.
func sumRepeatedIDs(ranges []idRange, allow func(reps int) bool) int {
	seen := make(map[int64]struct{})
	var sum int64
	for _, r := range ranges {
		for l := numDigits(r.lo); l <= numDigits(r.hi); l++ {
			for k := 1; k < l; k++ {
				if l%k != 0 || !allow(l/k) {
					continue
				}
				m := (pow10[l] - 1) / (pow10[k] - 1)
				lo := max(pow10[k-1], (r.lo+m-1)/m)
				hi := min(pow10[k]-1, r.hi/m)
				for p := lo; p <= hi; p++ {
					id := p * m
					if _, ok := seen[id]; ok {
						continue
					}
					seen[id] = struct{}{}
					sum += id
				}
			}
		}
	}
	return int(sum)
}

func parseIDRanges(input string) ([]idRange, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("no ranges")
	}
	var ranges []idRange
	for _, field := range strings.Split(input, ",") {
		r, err := parseIDRange(field)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseIDRange(s string) (idRange, error) {
	los, his, ok := strings.Cut(s, "-")
	if !ok {
		return idRange{}, fmt.Errorf("range %q has no '-'", s)
	}
	lo, err := parseID(los)
	if err != nil {
		return idRange{}, fmt.Errorf("bad range %q: %s", s, err)
	}
	hi, err := parseID(his)
	if err != nil {
		return idRange{}, fmt.Errorf("bad range %q: %s", s, err)
	}
	if lo > hi {
		return idRange{}, fmt.Errorf("bad range %q: start is after end", s)
	}
	return idRange{lo, hi}, nil
}

func parseID(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty ID")
	}
	if len(s) > maxIDDigits {
		return 0, fmt.Errorf("ID %s has more than %d digits", s, maxIDDigits)
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return 0, fmt.Errorf("ID %q contains non-digit %q", s, c)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("IDs start at 1")
	}
	return n, nil
}
