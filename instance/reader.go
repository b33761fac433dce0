// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// reader.go - parser for the instance text format.
//
// Tokens are whitespace separated, so trailing blanks and blank lines are
// tolerated. Every structural error is reported with its 1-based line number
// and wraps ErrMalformed.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/maneuvergen/precedence"
	"github.com/katalvlaran/maneuvergen/travel"
)

const maxLineBytes = 16 << 20

// lineScanner yields the non-blank lines of r as token slices.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func (l *lineScanner) next(what string) ([]string, error) {
	for l.sc.Scan() {
		l.line++
		if fields := strings.Fields(l.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := l.sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", l.line+1, err)
	}
	return nil, l.errorf("unexpected end of input, want %s", what)
}

func (l *lineScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", l.line, fmt.Sprintf(format, args...), ErrMalformed)
}

func (l *lineScanner) atoi(tok, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, l.errorf("%s %q is not an integer", what, tok)
	}
	return v, nil
}

func (l *lineScanner) number(tok, what string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, l.errorf("%s %q is not a finite number", what, tok)
	}
	return v, nil
}

// isReal reports whether a numeric token is written as a real.
func isReal(tok string) bool { return strings.ContainsAny(tok, ".eE") }

// Read parses one instance. Predecessor lines are turned back into arcs
// switch by switch, so Precedence() returns the same set as the writer saw,
// grouped by target switch. Density is the (rounded) header value. The
// instance is real-valued when any duration or off-diagonal travel time is
// written as a real.
func Read(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	ls := &lineScanner{sc: sc}

	in, err := read(ls)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return in, nil
}

func read(ls *lineScanner) (*Instance, error) {
	// Header.
	f, err := ls.next("header")
	if err != nil {
		return nil, err
	}
	if len(f) != 3 {
		return nil, ls.errorf("header has %d fields, want 3", len(f))
	}
	n, err := ls.atoi(f[0], "n")
	if err != nil {
		return nil, err
	}
	m, err := ls.atoi(f[1], "m")
	if err != nil {
		return nil, err
	}
	if n < 1 || m < 1 {
		return nil, ls.errorf("n=%d m=%d, want both ≥ 1", n, m)
	}
	density, err := ls.number(f[2], "density")
	if err != nil {
		return nil, err
	}

	in := &Instance{
		n:       n,
		m:       m,
		p:       make([]float64, n+1),
		tech:    make([]Technology, n+1),
		s:       make([]*travel.Matrix, m),
		density: density,
	}

	// Switches.
	var i, j, k int
	for i = 1; i <= n; i++ {
		if f, err = ls.next("switch line"); err != nil {
			return nil, err
		}
		if len(f) != 3 {
			return nil, ls.errorf("switch line has %d fields, want 3", len(f))
		}
		if err = ls.expectIndex(f[0], i); err != nil {
			return nil, err
		}
		if in.tech[i], err = ParseTechnology(f[1]); err != nil {
			return nil, ls.errorf("switch %d: technology %q", i, f[1])
		}
		if in.p[i], err = ls.number(f[2], "duration"); err != nil {
			return nil, err
		}
		in.real = in.real || isReal(f[2])
	}

	// Predecessors.
	for i = 1; i <= n; i++ {
		if f, err = ls.next("predecessor line"); err != nil {
			return nil, err
		}
		if len(f) < 2 {
			return nil, ls.errorf("predecessor line has %d fields, want ≥ 2", len(f))
		}
		if err = ls.expectIndex(f[0], i); err != nil {
			return nil, err
		}
		count, err := ls.atoi(f[1], "predecessor count")
		if err != nil {
			return nil, err
		}
		if count != len(f)-2 {
			return nil, ls.errorf("switch %d: count %d but %d predecessors listed", i, count, len(f)-2)
		}
		for _, tok := range f[2:] {
			if j, err = ls.atoi(tok, "predecessor"); err != nil {
				return nil, err
			}
			if j < 1 || j > n || j == i {
				return nil, ls.errorf("switch %d: predecessor %d out of range", i, j)
			}
			in.arcs = append(in.arcs, precedence.Arc{From: j, To: i})
		}
	}

	// Travel matrices.
	for k = 0; k < m; k++ {
		mat, _ := travel.NewMatrix(n) // n ≥ 1
		for i = 0; i <= n; i++ {
			if f, err = ls.next(fmt.Sprintf("travel row %d of team %d", i, k)); err != nil {
				return nil, err
			}
			if len(f) != n+1 {
				return nil, ls.errorf("team %d row %d has %d values, want %d", k, i, len(f), n+1)
			}
			for j = 0; j <= n; j++ {
				v, err := ls.number(f[j], "travel time")
				if err != nil {
					return nil, err
				}
				_ = mat.Set(i, j, v) // indices in range
				if i != j {
					in.real = in.real || isReal(f[j])
				}
			}
		}
		in.s[k] = mat
	}

	if f, err = ls.next(""); err == nil {
		return nil, ls.errorf("unexpected trailing data %q", strings.Join(f, " "))
	}
	return in, nil
}

func (l *lineScanner) expectIndex(tok string, want int) error {
	got, err := l.atoi(tok, "switch index")
	if err != nil {
		return err
	}
	if got != want {
		return l.errorf("switch index %d, want %d", got, want)
	}
	return nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	in, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	return in, nil
}
