package bytepatch

// Span records a byte range within one side of a diff: an offset and a
// length. Used to track a Hunk's footprint in L (Left) and in R (Right).
type Span struct {
	Offset int
	Length int
}

// End returns Offset + Length.
func (s Span) End() int {
	return s.Offset + s.Length
}
