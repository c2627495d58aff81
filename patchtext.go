package bytepatch

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/dacharyc/bytepatch/buffer"
)

// percentLiterals lists the punctuation the patch text format keeps
// unescaped for readability (§4.3.8), paired with the upper-case percent
// escape net/url's QueryEscape produces for each.
var percentLiterals = [...][2]string{
	{"%21", "!"}, {"%7E", "~"}, {"%27", "'"}, {"%28", "("}, {"%29", ")"},
	{"%3B", ";"}, {"%2F", "/"}, {"%3F", "?"}, {"%3A", ":"}, {"%40", "@"},
	{"%26", "&"}, {"%3D", "="}, {"%2B", "+"}, {"%24", "$"}, {"%2C", ","},
	{"%23", "#"},
}

// percentEncode escapes data like URL form-encoding, then unescapes the
// human-friendly punctuation allowlist back to literal characters, and
// turns form-encoded spaces (a literal "+" after QueryEscape) back into a
// real space byte. This must run before the %2B->"+" literal substitution
// so a genuine '+' byte and an encoded space are never confused.
func percentEncode(data []byte) string {
	escaped := url.QueryEscape(string(data))
	escaped = strings.ReplaceAll(escaped, "+", " ")
	for _, lit := range percentLiterals {
		escaped = strings.ReplaceAll(escaped, lit[0], lit[1])
	}
	return escaped
}

// percentDecode inverts percentEncode: literal '+' bytes were never
// escaped, so they're first re-escaped to %2B to protect them from
// QueryUnescape's plus-means-space rule before unescaping everything else.
func percentDecode(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "+", "%2B")
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPatch, err)
	}
	return []byte(decoded), nil
}

// formatSpan renders a Span's header field per §4.3.8's special cases:
// length 0 keeps the raw offset with an explicit ",0"; length 1 omits the
// comma entirely; otherwise it's a 1-based start and an explicit length.
func formatSpan(s Span) string {
	switch s.Length {
	case 0:
		return fmt.Sprintf("%d,0", s.Offset)
	case 1:
		return fmt.Sprintf("%d", s.Offset+1)
	default:
		return fmt.Sprintf("%d,%d", s.Offset+1, s.Length)
	}
}

// String renders the patch in the unified-diff-like text format of §4.3.8.
func (p Patch) String() string {
	var buf strings.Builder
	for _, h := range p.Hunks {
		buf.WriteString("@@ -")
		buf.WriteString(formatSpan(h.Left))
		buf.WriteString(" +")
		buf.WriteString(formatSpan(h.Right))
		buf.WriteString(" @@\n")
		for _, f := range h.Edits {
			buf.WriteByte(f.Op.Glyph())
			buf.WriteString(percentEncode(f.Text.Bytes()))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

var patchHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@$`)

// ParsePatch is the inverse of Patch.String. It tolerates blank lines
// between hunks and fails fast with ErrMalformedPatch on a header mismatch
// or an unknown leading glyph.
func ParsePatch(text string) (Patch, error) {
	if text == "" {
		return Patch{}, nil
	}

	lines := strings.Split(text, "\n")
	var hunks []Hunk
	i := 0
	for i < len(lines) {
		if lines[i] == "" {
			i++
			continue
		}

		m := patchHeaderRe.FindStringSubmatch(lines[i])
		if m == nil {
			return Patch{}, fmt.Errorf("%w: invalid header %q", ErrMalformedPatch, lines[i])
		}
		left, err := parseSpanFields(m[1], m[2])
		if err != nil {
			return Patch{}, err
		}
		right, err := parseSpanFields(m[3], m[4])
		if err != nil {
			return Patch{}, err
		}
		i++

		var edits []Fragment
		for i < len(lines) && lines[i] != "" && !strings.HasPrefix(lines[i], "@@ ") {
			line := lines[i]
			op, err := ParseOperation(line[0])
			if err != nil {
				return Patch{}, err
			}
			payload, err := percentDecode(line[1:])
			if err != nil {
				return Patch{}, err
			}
			edits = append(edits, newFragment(op, buffer.New(payload)))
			i++
		}
		hunks = append(hunks, Hunk{Left: left, Right: right, Edits: edits})
	}

	p := Patch{Hunks: hunks, cfg: *defaultPatchConfig()}
	if err := p.Validate(); err != nil {
		return Patch{}, err
	}
	return p, nil
}

func parseSpanFields(startField, lenField string) (Span, error) {
	start, err := strconv.Atoi(startField)
	if err != nil {
		return Span{}, fmt.Errorf("%w: bad offset %q", ErrMalformedPatch, startField)
	}
	if lenField == "" {
		return Span{Offset: start - 1, Length: 1}, nil
	}
	length, err := strconv.Atoi(lenField)
	if err != nil {
		return Span{}, fmt.Errorf("%w: bad length %q", ErrMalformedPatch, lenField)
	}
	if length == 0 {
		return Span{Offset: start, Length: 0}, nil
	}
	return Span{Offset: start - 1, Length: length}, nil
}
