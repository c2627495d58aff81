// Package buffer provides a zero-copy, immutable view over a byte buffer.
//
// A Slice never mutates its backing array; every operation that narrows a
// view (Head, Tail, Cut, Trunc, SliceAt) simply reslices the shared
// backing array, which is how Go slices behave natively. Operations that
// join views (Concat) necessarily copy, since two slices are not in
// general adjacent in memory.
package buffer

import "bytes"

// Slice is an immutable view over a contiguous byte range.
type Slice struct {
	data []byte
	off  int
}

// New wraps data as a root Slice with absolute offset 0.
func New(data []byte) Slice {
	return Slice{data: data}
}

// NewAt wraps data as a Slice whose first byte sits at the given absolute
// offset within some logical root buffer. Used when a caller already knows
// where a fragment lives (e.g. a patch hunk's left span) and wants that
// coordinate preserved for bitap anchoring.
func NewAt(data []byte, offset int) Slice {
	return Slice{data: data, off: offset}
}

// Empty is the zero-length Slice.
var Empty = Slice{}

// Len returns the number of bytes in the slice.
func (s Slice) Len() int {
	return len(s.data)
}

// Offset returns the slice's absolute position in its logical root buffer.
// Meaningful only for slices derived from a single root via Head/Tail/Cut/
// Trunc/SliceAt; a Concat result carries the offset of its first non-empty
// operand.
func (s Slice) Offset() int {
	return s.off
}

// Bytes returns the raw backing bytes. Callers must not mutate the result.
func (s Slice) Bytes() []byte {
	return s.data
}

func (s Slice) String() string {
	return string(s.data)
}

// Head returns the first n bytes. Panics if n > Len().
func (s Slice) Head(n int) Slice {
	return Slice{data: s.data[:n], off: s.off}
}

// Tail returns the last n bytes.
func (s Slice) Tail(n int) Slice {
	start := s.Len() - n
	return Slice{data: s.data[start:], off: s.off + start}
}

// Cut drops the first n bytes, returning the remainder.
func (s Slice) Cut(n int) Slice {
	return Slice{data: s.data[n:], off: s.off + n}
}

// Trunc keeps only the first n bytes (alias for Head, named per the
// buffer-primitive contract in the core specification).
func (s Slice) Trunc(n int) Slice {
	return s.Head(n)
}

// SliceAt returns the view starting at local position pos and running to
// the end.
func (s Slice) SliceAt(pos int) Slice {
	return s.Cut(pos)
}

// Range returns the view [from, to) in local coordinates.
func (s Slice) Range(from, to int) Slice {
	return Slice{data: s.data[from:to], off: s.off + from}
}

// At returns the byte at local index i (readRelative in the core contract).
func (s Slice) At(i int) byte {
	return s.data[i]
}

// Concat appends other after s, copying into a fresh backing array.
func (s Slice) Concat(other Slice) Slice {
	return Concat(s, other)
}

// Concat joins any number of slices into one, copying once into a
// correctly sized backing array (the merge(a, b, ...) of the buffer
// contract).
func Concat(parts ...Slice) Slice {
	total := 0
	off := 0
	offSet := false
	for _, p := range parts {
		total += p.Len()
		if !offSet && p.Len() > 0 {
			off = p.off
			offSet = true
		}
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p.data...)
	}
	return Slice{data: out, off: off}
}

// CommonPrefixLen returns the length of the common prefix between s and other.
func (s Slice) CommonPrefixLen(other Slice) int {
	n := s.Len()
	if other.Len() < n {
		n = other.Len()
	}
	i := 0
	for i < n && s.data[i] == other.data[i] {
		i++
	}
	return i
}

// CommonSuffixLen returns the length of the common suffix between s and other.
func (s Slice) CommonSuffixLen(other Slice) int {
	n := s.Len()
	m := other.Len()
	lim := n
	if m < lim {
		lim = m
	}
	i := 0
	for i < lim && s.data[n-1-i] == other.data[m-1-i] {
		i++
	}
	return i
}

// IndexOf returns the local position of the first occurrence of pattern at
// or after from, or -1 if pattern does not occur (NO_MATCH is a local
// signal, never an error, per the buffer-primitive contract).
func (s Slice) IndexOf(pattern Slice, from int) int {
	if from < 0 {
		from = 0
	}
	if from > s.Len() {
		return -1
	}
	idx := bytes.Index(s.data[from:], pattern.data)
	if idx < 0 {
		return -1
	}
	return idx + from
}

// LastIndexOf returns the local position of the last occurrence of pattern,
// or -1 if it does not occur.
func (s Slice) LastIndexOf(pattern Slice) int {
	return bytes.LastIndex(s.data, pattern.data)
}

// Equal reports whether s and other have identical contents.
func (s Slice) Equal(other Slice) bool {
	return bytes.Equal(s.data, other.data)
}
