package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

var errInvalidSize = errors.New("invalid width and/or height")

func parseDimension(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "could not parse %s", name)
	}
	return n, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(errInvalidSize, "%dx%d", width, height)
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// promptSize reads width then height, one per line. Prompts are only
// written when showPrompts is set so piped input stays quiet.
func promptSize(in io.Reader, out io.Writer, showPrompts bool) (int, int, error) {
	scanner := bufio.NewScanner(in)

	read := func(name, prompt string) (int, error) {
		if showPrompts {
			_, _ = fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrapf(err, "reading %s", name)
			}
			return 0, errors.Errorf("no %s given", name)
		}
		return parseDimension(name, scanner.Text())
	}

	if showPrompts {
		_, _ = fmt.Fprintln(out, "Please enter the width and height of the canvas")
	}

	width, err := read("width", "Width = ")
	if err != nil {
		return 0, 0, err
	}
	height, err := read("height", "Height = ")
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}

// resolveSize picks the image size from positional args, then from
// configuration, then from input.
func resolveSize(args []string, cfgWidth, cfgHeight int, in io.Reader, out io.Writer) (int, int, error) {
	var width, height int
	var err error

	switch {
	case len(args) == 2:
		if width, err = parseDimension("width", args[0]); err != nil {
			return 0, 0, err
		}
		if height, err = parseDimension("height", args[1]); err != nil {
			return 0, 0, err
		}
	case cfgWidth > 0 && cfgHeight > 0:
		width, height = cfgWidth, cfgHeight
	default:
		if width, height, err = promptSize(in, out, isTerminal(in)); err != nil {
			return 0, 0, err
		}
	}

	if err := checkSize(width, height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
