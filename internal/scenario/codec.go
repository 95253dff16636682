package scenario

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"zonedrawer/internal/geom"
)

// DefaultScale converts internal world units to file units.
const DefaultScale = 0.01

var (
	ErrFormat   = errors.New("malformed scenario")
	ErrNoStart  = errors.New("start point is not set")
	ErrNoFinish = errors.New("finish point is not set")
)

// FormatError reports where a scenario file failed to parse. Line is
// 1-based and counts only non-blank lines; 0 means the file as a whole.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s", ErrFormat, e.Reason)
	}
	return fmt.Sprintf("%v: line %d: %s", ErrFormat, e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// Codec reads and writes the simulator's scenario file:
//
//	x_start y_start
//	x_finish y_finish
//	N
//	x1 y1 x2 y2 x3 y3 x4 y4   (N lines, one per zone)
//
// File values are internal values multiplied by Scale, written with two
// decimals.
type Codec struct {
	Scale float64
}

func NewCodec(scale float64) Codec {
	if scale == 0 {
		scale = DefaultScale
	}
	return Codec{Scale: scale}
}

// Encode renders s. Both anchors must be set.
func (c Codec) Encode(s *Store) ([]byte, error) {
	start, ok := s.Start()
	if !ok {
		return nil, ErrNoStart
	}
	finish, ok := s.Finish()
	if !ok {
		return nil, ErrNoFinish
	}
	lines := make([]string, 0, 3+s.Len())
	lines = append(lines, c.formatPoints(start), c.formatPoints(finish), strconv.Itoa(s.Len()))
	for _, z := range s.zones {
		lines = append(lines, c.formatPoints(z[:]...))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func (c Codec) formatPoints(pts ...geom.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.2f %.2f", p.X*c.Scale, p.Y*c.Scale)
	}
	return sb.String()
}

// Decode parses a scenario into a new store. Blank lines and surrounding
// whitespace are ignored. Any structural problem fails the whole decode.
func (c Codec) Decode(r io.Reader) (*Store, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	if len(lines) < 3 {
		return nil, &FormatError{Reason: fmt.Sprintf("need at least 3 lines, got %d", len(lines))}
	}

	s := NewStore()
	start, err := c.parsePoints(lines[0], 1, 1)
	if err != nil {
		return nil, err
	}
	finish, err := c.parsePoints(lines[1], 2, 1)
	if err != nil {
		return nil, err
	}
	s.SetStart(start[0])
	s.SetFinish(finish[0])

	n, err := strconv.Atoi(lines[2])
	if err != nil || n < 0 {
		return nil, &FormatError{Line: 3, Reason: fmt.Sprintf("zone count %q is not a non-negative integer", lines[2])}
	}
	if got := len(lines) - 3; got != n {
		return nil, &FormatError{Line: 3, Reason: fmt.Sprintf("declared %d zones, found %d zone lines", n, got)}
	}
	for i, l := range lines[3:] {
		pts, err := c.parsePoints(l, 4+i, 4)
		if err != nil {
			return nil, err
		}
		s.AddZone(geom.Zone(pts))
	}
	return s, nil
}

func (c Codec) parsePoints(line string, lineNo, want int) ([]geom.Point, error) {
	f := strings.Fields(line)
	if len(f) != 2*want {
		return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("want %d numbers, got %d", 2*want, len(f))}
	}
	pts := make([]geom.Point, want)
	for i, s := range f {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &FormatError{Line: lineNo, Reason: fmt.Sprintf("field %d: %q is not a number", i+1, s)}
		}
		v /= c.Scale
		if i%2 == 0 {
			pts[i/2].X = v
		} else {
			pts[i/2].Y = v
		}
	}
	return pts, nil
}

// WriteFile encodes s to path. Nothing is written when encoding fails.
func (c Codec) WriteFile(path string, s *Store) error {
	b, err := c.Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (c Codec) ReadFile(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Decode(bytes.NewReader(b))
}
