package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// A dialSession is the state of the interactive dial.
type dialSession struct {
	pos       dial
	landings  int
	crossings int
}

func newDialSession() *dialSession {
	return &dialSession{pos: dialStart}
}

func (s *dialSession) prompt() string {
	return fmt.Sprintf("[%02d] > ", s.pos)
}

// exec runs one line of input and returns the text to show. It reports
// done when the session should end.
func (s *dialSession) exec(line string) (out string, done bool, err error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return "", false, nil
	case "quit", "exit":
		return "", true, nil
	case "reset":
		*s = *newDialSession()
		return fmt.Sprintf("dial reset to %d", s.pos), false, nil
	case "help":
		return "enter rotations like L68 or R14; reset; quit", false, nil
	}
	r, err := parseRotation(line)
	if err != nil {
		return "", false, err
	}
	st := step{from: s.pos, rot: r, to: advance(s.pos, r)}
	s.pos = st.to
	c := crossings(st.from, r)
	s.crossings += c
	landed := ""
	if st.landed() {
		s.landings++
		landed = " (landed on 0)"
	}
	return fmt.Sprintf("%d -> %d%s; passed 0 %d time(s); totals: landings=%d crossings=%d",
		st.from, s.pos, landed, c, s.landings, s.crossings), false, nil
}

func runDial(cfg *config) error {
	s := newDialSession()
	l, err := readline.NewEx(&readline.Config{
		Prompt:      s.prompt(),
		HistoryFile: cfg.dialHistory,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		l.SetPrompt(s.prompt())
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		out, done, err := s.exec(line)
		if err != nil {
			fmt.Fprintln(l.Stderr(), "error:", err)
			continue
		}
		if done {
			return nil
		}
		if out != "" {
			fmt.Fprintln(l.Stdout(), out)
		}
	}
}
