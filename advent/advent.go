package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "Path to an ini config file (default advent.ini, if present)")
		inputFile  = flag.String("input", "", "Read puzzle input from this file instead of the input dir")
		verbose    = flag.Bool("v", false, "Log input sizes and timings")
		debug      = flag.Bool("debug", false, "Dump parsed input to stderr")
		profile    = flag.String("profile", "", "Write a wall-clock profile (pprof format) to this file")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	d := &driver{
		cfg:       cfg,
		inputs:    newInputLoader(cfg),
		inputFile: *inputFile,
		verbose:   *verbose,
		debug:     *debug,
		stdout:    os.Stdout,
	}
	if err := withProfile(*profile, func() error { return d.run(flag.Arg(0)) }); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution|all|dial]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func withProfile(filename string, fn func() error) error {
	if filename == "" {
		return fn()
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating profile: %s", err)
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	runErr := fn()
	stopErr := stop()
	closeErr := f.Close()
	if runErr != nil {
		return runErr
	}
	if stopErr != nil {
		return fmt.Errorf("error writing profile: %s", stopErr)
	}
	if closeErr != nil {
		return fmt.Errorf("error closing profile: %s", closeErr)
	}
	return nil
}

// A puzzle is one day's parser and its two parts. The parsed value is
// shared by both parts.
type puzzle struct {
	day   int
	parse func(input string) (any, error)
	parts [2]func(parsed any) int
}

// A solution is a runnable name: a puzzle and the parts to print.
type solution struct {
	p     *puzzle
	parts []int
}

var (
	puzzles   = make(map[int]*puzzle)
	solutions = make(map[string]solution)
)

// register adds day's puzzle under the names "<day>", "<day>a" and "<day>b".
func register[T any](day int, parse func(string) (T, error), part1, part2 func(T) int) {
	if _, ok := puzzles[day]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %d", day))
	}
	p := &puzzle{
		day: day,
		parse: func(input string) (any, error) {
			v, err := parse(input)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		parts: [2]func(any) int{
			func(v any) int { return part1(v.(T)) },
			func(v any) int { return part2(v.(T)) },
		},
	}
	puzzles[day] = p
	name := strconv.Itoa(day)
	solutions[name] = solution{p, []int{1, 2}}
	solutions[name+"a"] = solution{p, []int{1}}
	solutions[name+"b"] = solution{p, []int{2}}
}

type driver struct {
	cfg       *config
	inputs    *inputLoader
	inputFile string
	verbose   bool
	debug     bool
	stdout    io.Writer
}

func (d *driver) run(name string) error {
	switch name {
	case "all":
		return d.runAll()
	case "dial":
		return runDial(d.cfg)
	}
	s, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	input, err := d.input(s.p.day)
	if err != nil {
		return err
	}
	return d.solve(d.stdout, s, input)
}

func (d *driver) input(day int) (string, error) {
	if d.inputFile != "" {
		b, err := os.ReadFile(d.inputFile)
		if err != nil {
			return "", err
		}
		d.logInput(day, d.inputFile, b)
		return string(b), nil
	}
	b, src, err := d.inputs.load(day)
	if err != nil {
		return "", err
	}
	d.logInput(day, src, b)
	return string(b), nil
}

func (d *driver) logInput(day int, src string, b []byte) {
	if !d.verbose {
		return
	}
	lines := bytes.Count(b, []byte("\n"))
	log.Printf("day %d: read %s (%s lines) from %s",
		day, humanize.Bytes(uint64(len(b))), humanize.Comma(int64(lines)), src)
}

func (d *driver) solve(w io.Writer, s solution, input string) error {
	start := time.Now()
	parsed, err := s.p.parse(input)
	if err != nil {
		return fmt.Errorf("day %d: bad input: %s", s.p.day, err)
	}
	if d.verbose {
		log.Printf("day %d: parsed in %s", s.p.day, time.Since(start))
	}
	if d.debug {
		log.Printf("day %d input: %# v", s.p.day, pretty.Formatter(parsed))
	}
	for _, part := range s.parts {
		start := time.Now()
		n := s.p.parts[part-1](parsed)
		if d.verbose {
			log.Printf("day %d part %d: %s in %s", s.p.day, part, humanize.Comma(int64(n)), time.Since(start))
		}
		fmt.Fprintf(w, "Part %d: %d\n", part, n)
	}
	return nil
}

// runAll solves every registered day concurrently and prints the results
// in day order.
func (d *driver) runAll() error {
	if d.inputFile != "" {
		return fmt.Errorf("-input cannot be used with all")
	}
	var days []int
	for day := range puzzles {
		days = append(days, day)
	}
	sort.Ints(days)

	outs := make([]bytes.Buffer, len(days))
	var wg wait.Group
	for i, day := range days {
		wg.Go(func(quit <-chan struct{}) error {
			input, err := d.input(day)
			if err != nil {
				return err
			}
			select {
			case <-quit:
				return nil
			default:
			}
			return d.solve(&outs[i], solutions[strconv.Itoa(day)], input)
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}
	for i, day := range days {
		fmt.Fprintf(d.stdout, "Day %d\n", day)
		if _, err := outs[i].WriteTo(d.stdout); err != nil {
			return err
		}
	}
	return nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
