// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	errTokenCount = errors.New("want <index> <x> <y>")
	errNotFinite  = errors.New("coordinate is not finite")
)

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a line-oriented instance description.
//
// Format:
//   - blank lines are skipped;
//   - the first non-empty line is either a bare integer (declared point count,
//     used only to size the result) or an indexed coordinate line;
//   - every other line is "<index> <x> <y>", whitespace separated; the index
//     token is discarded, x and y are parsed as float64.
//
// Any malformed line (wrong token count, non-numeric or non-finite coordinate,
// a count line that is not a non-negative integer) aborts the load with a
// *ParseError; no partial result is returned.
//
// Complexity: O(total input size).
func Load(r io.Reader) ([]Point, error) {
	var (
		sc     = bufio.NewScanner(r)
		pts    []Point
		lineNo int
		first  = true
		fields []string
		p      Point
		err    error
	)
	for sc.Scan() {
		lineNo++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if first {
			first = false
			if len(fields) == 1 {
				count, perr := strconv.Atoi(fields[0])
				if perr != nil || count < 0 {
					if perr == nil {
						perr = errors.New("negative point count")
					}
					return nil, &ParseError{Line: lineNo, Text: sc.Text(), Err: perr}
				}
				pts = make([]Point, 0, count)
				continue
			}
		}

		if p, err = parsePoint(fields); err != nil {
			return nil, &ParseError{Line: lineNo, Text: sc.Text(), Err: err}
		}
		pts = append(pts, p)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}

	return pts, nil
}

// parsePoint converts "<index> <x> <y>" fields into a Point.
func parsePoint(fields []string) (Point, error) {
	if len(fields) != 3 {
		return Point{}, errTokenCount
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, err
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Point{}, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, errNotFinite
	}

	return Point{X: x, Y: y}, nil
}
