// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// writer.go - text serialization.
//
// Numbers use the shortest representation that parses back to the same
// float64, so Read(WriteTo(x)) reproduces every duration exactly. Real-valued
// instances keep a fractional part on every duration ("7.0"), integer-only
// instances print plain integers, travel diagonals are always "0" and the
// density header is always real ("0.0", "0.333"). Lines carry no trailing
// blanks.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// formatNumber renders v in shortest round-trip form ("3", "4.25").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatReal renders v in shortest round-trip form that always reads as a
// real: integral values gain ".0" and magnitudes below 1e-4 or from 1e16 on
// switch to exponent form ("1e-05").
func formatReal(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatValue renders a duration in the instance's number kind.
func (in *Instance) formatValue(v float64) string {
	if in.real {
		return formatReal(v)
	}
	return formatNumber(v)
}

// roundTo rounds v half away from zero to the given number of decimals.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

// countingWriter tracks the bytes written for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes in in the instance text format. It implements io.WriterTo.
func (in *Instance) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	// Header.
	fmt.Fprintf(bw, "%d %d %s\n", in.n, in.m, formatReal(roundTo(in.density, 3)))

	// Switches.
	var i, j, k int
	for i = 1; i <= in.n; i++ {
		fmt.Fprintf(bw, "%d %s %s\n", i, in.tech[i], in.formatValue(in.p[i]))
	}

	// Predecessors, in arc order.
	preds := in.Predecessors()
	for i = 1; i <= in.n; i++ {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(len(preds[i])))
		for _, j = range preds[i] {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(j))
		}
		bw.WriteByte('\n')
	}

	// Travel matrices.
	o := in.n + 1
	for k = 0; k < in.m; k++ {
		for i = 0; i < o; i++ {
			row, _ := in.s[k].Row(i) // i in range
			for j = range row {
				if j > 0 {
					bw.WriteByte(' ')
				}
				if i == j {
					bw.WriteString(formatNumber(row[j]))
				} else {
					bw.WriteString(in.formatValue(row[j]))
				}
			}
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("WriteTo: %w", err)
	}
	return cw.n, nil
}

// FileMode is the permission of files written by WriteFile. Instance files
// are shared with solvers and other users, so they are world-readable.
const FileMode os.FileMode = 0o644

// WriteFile writes in to path atomically: the content goes to a temporary
// file in the same directory which is then renamed over path. On error no
// file is left at path and the temporary is removed. The result has FileMode
// permissions (the temporary starts at 0600).
func WriteFile(path string, in *Instance) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = in.WriteTo(tmp); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = tmp.Chmod(FileMode); err != nil {
		return fmt.Errorf("WriteFile %s: chmod: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("WriteFile %s: sync: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile %s: close: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("WriteFile %s: rename: %w", path, err)
	}
	return nil
}
