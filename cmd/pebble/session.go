package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/pebble"
)

// session evaluates lines of input against one environment.
type session struct {
	env  *pebble.Env
	opts []pebble.ParseOption

	out, errs io.Writer
	// verb formats results.
	verb string
	// echo prints the parse tree of each line before its result.
	echo bool
	// prefix is written before each result. binds reports the values of
	// variables each line assigns.
	prefix string
	binds  bool

	bad, bind *color.Color
}

func newSession(out, errs io.Writer, verb string) *session {
	return &session{
		env:  pebble.NewEnv(),
		out:  out,
		errs: errs,
		verb: verb,
		bad:  color.New(color.FgRed),
		bind: color.New(color.FgGreen),
	}
}

// interactive switches the session to the REPL output style.
func (s *session) interactive() {
	s.prefix = "= "
	s.binds = true
}

// given evaluates src and binds the result to name.
func (s *session) given(name, src string) error {
	a, err := pebble.ParseString(src, s.opts...)
	if err != nil {
		return errors.Wrapf(err, "setting %s", name)
	}
	r, err := s.env.Eval(a)
	if err != nil {
		return errors.Wrapf(err, "setting %s", name)
	}
	s.env.Set(name, r)
	return nil
}

// line parses and evaluates one line and writes its result or error. It
// reports whether the line succeeded. Blank lines succeed with no output.
func (s *session) line(src string) bool {
	if strings.TrimSpace(src) == "" {
		return true
	}
	a, err := pebble.ParseString(src, s.opts...)
	if err != nil {
		s.bad.Fprintf(s.errs, "parse error: %v\n", err)
		return false
	}
	if s.echo {
		fmt.Fprintf(s.out, "%v : ", a)
	}
	r, err := s.env.Eval(a)
	if err != nil {
		if s.echo {
			fmt.Fprintln(s.out)
		}
		s.bad.Fprintf(s.errs, "eval error: %v\n", err)
		return false
	}
	if s.binds {
		for _, name := range a.Binds() {
			v, _ := s.env.Lookup(name)
			s.bind.Fprintf(s.out, "%s = "+s.verb+"\n", name, v)
		}
	}
	fmt.Fprintf(s.out, s.prefix+s.verb+"\n", r)
	return true
}

// run evaluates each line of in and returns the number of lines that failed.
func (s *session) run(in io.Reader) (int, error) {
	fails := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !s.line(sc.Text()) {
			fails++
		}
	}
	if err := sc.Err(); err != nil {
		return fails, errors.Wrap(err, "reading input")
	}
	return fails, nil
}
