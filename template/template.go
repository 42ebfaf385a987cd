// Package template parses regex replacement strings into a sequence
// of literal and capture-reference segments, isolated from the
// matching facade so a template can be parsed once and reused across
// many Expand calls.
package template

// SegmentType identifies the kind of one parsed Segment.
type SegmentType int

const (
	SegmentLiteral SegmentType = iota
	SegmentCapture
)

// Segment is one piece of a parsed Template.
type Segment struct {
	Type    SegmentType
	Literal string // for SegmentLiteral
	Index   int    // for SegmentCapture: 0-9, 0 is the whole match
}

// Template is a replacement string parsed once into Segments.
type Template struct {
	Segments []Segment
}

// Parse parses a replacement template using the engine's single-digit
// capture-reference syntax: \0-\9 and $0-$9 refer to capture groups,
// \\ and $$ are literal backslash/dollar, and \t, \r, \n are the usual
// control escapes. There are no named captures and no ${...} braced
// form. Parse never fails: any \x or $x it doesn't recognize, including
// a trailing backslash or dollar at the end of the string, degrades to
// a literal x (or a literal \ / $ with nothing following).
func Parse(s string) (*Template, error) {
	t := &Template{}
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			t.Segments = append(t.Segments, Segment{Type: SegmentLiteral, Literal: string(lit)})
			lit = nil
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' && c != '$' {
			lit = append(lit, c)
			continue
		}
		if i+1 >= len(s) {
			lit = append(lit, c)
			continue
		}
		next := s[i+1]
		switch {
		case next >= '0' && next <= '9':
			flush()
			t.Segments = append(t.Segments, Segment{Type: SegmentCapture, Index: int(next - '0')})
			i++
		case c == '\\' && next == 't':
			lit = append(lit, '\t')
			i++
		case c == '\\' && next == 'r':
			lit = append(lit, '\r')
			i++
		case c == '\\' && next == 'n':
			lit = append(lit, '\n')
			i++
		case next == c:
			lit = append(lit, c)
			i++
		default:
			lit = append(lit, next)
			i++
		}
	}
	flush()
	return t, nil
}

// Expand renders t against submatches, where submatches[0] is the
// whole match. A reference past the end of submatches, or to a group
// that did not participate (the empty string), expands to nothing.
func Expand(t *Template, submatches []string) string {
	var out []byte
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentLiteral:
			out = append(out, seg.Literal...)
		case SegmentCapture:
			if seg.Index < len(submatches) {
				out = append(out, submatches[seg.Index]...)
			}
		}
	}
	return string(out)
}
