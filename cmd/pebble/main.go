package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/pebble"
)

const prompt = "pebble> "

func main() {
	log.SetFlags(0)
	var (
		inname, verb, hist string
		with               [][2]string
		echo, strict       bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, one statement per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&strict, "strict", false, "reject characters that begin no token instead of ending the line")
	flag.StringVar(&hist, "history", defaultHistory(), "interactive history file")
	flag.Parse()

	s := newSession(os.Stdout, os.Stderr, verb)
	s.echo = echo
	if strict {
		s.opts = append(s.opts, pebble.Strict())
	}
	for _, d := range with {
		if err := s.given(d[0], d[1]); err != nil {
			log.Fatal(err)
		}
	}

	if inname == "" && flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		s.interactive()
		if err := repl(s, hist); err != nil {
			log.Fatal(err)
		}
		return
	}

	fails := 0
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		n, err := s.run(f)
		if err != nil {
			log.Fatal(err)
		}
		fails += n
	}
	for _, arg := range flag.Args() {
		if !s.line(arg) {
			fails++
		}
	}
	if fails > 0 {
		os.Exit(1)
	}
}

// repl reads statements from the terminal until EOF or :quit.
func repl(s *session, hist string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case err == nil: // do nothing
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl-C discards the line.
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		default:
			return errors.Wrap(err, "reading input")
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		}
		ln.AppendHistory(line)
		s.line(line)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pebble_history")
}
