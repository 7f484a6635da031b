package diagram

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteText writes d in the plain tab-separated format "x\ty\n" per
// point, one line per point. Infinite values are written as the
// lowercase literal "inf"/"-inf" (spec §4.9/§6: the wire format is
// bit-stable across implementations, and `strconv.FormatFloat` alone
// would emit Go's capitalized, signed "+Inf"/"-Inf" instead).
func WriteText(w io.Writer, d *Diagram) error {
	bw := bufio.NewWriter(w)
	for _, p := range d.points {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formatFloat renders v the way the spec's wire formats require:
// infinities as the literal "inf"/"-inf", everything else via
// strconv.FormatFloat's shortest round-tripping representation.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// ReadText parses the plain tab-separated format written by WriteText
// into a Diagram tagged with dimension.
func ReadText(r io.Reader, dimension int) (*Diagram, error) {
	d := New(dimension)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, ErrParseError
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, ErrParseError
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, ErrParseError
		}

		d.AddFinite(x, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}
