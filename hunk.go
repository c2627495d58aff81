package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// Hunk is a patch fragment: a run of diff Fragments (edits plus surrounding
// EQUAL context) together with its footprint in L (Left) and R (Right).
// Named Hunk rather than Fragment to avoid colliding with the diff-level
// Fragment type.
type Hunk struct {
	Left, Right Span
	Edits       []Fragment
}

// leftText concatenates every non-INSERT edit, reconstructing this hunk's
// view of L.
func (h Hunk) leftText() buffer.Slice {
	var parts []buffer.Slice
	for _, f := range h.Edits {
		if f.Op != OpInsert {
			parts = append(parts, f.Text)
		}
	}
	return buffer.Concat(parts...)
}

// rightText concatenates every non-DELETE edit, reconstructing this hunk's
// view of R.
func (h Hunk) rightText() buffer.Slice {
	var parts []buffer.Slice
	for _, f := range h.Edits {
		if f.Op != OpDelete {
			parts = append(parts, f.Text)
		}
	}
	return buffer.Concat(parts...)
}

// empty reports whether the hunk carries no actual edit (pure EQUAL
// decomposition produced by splitMax's bookkeeping).
func (h Hunk) empty() bool {
	for _, f := range h.Edits {
		if f.Op != OpEqual {
			return false
		}
	}
	return true
}

// addContext implements §4.3.2: grow padding around the hunk until the
// pattern T[Left.Offset .. Left.Offset+Left.Length] is unique within T
// (or the bitap word-width cap is hit), then prepend/append that padding as
// EQUAL context and grow both spans to match. pre is the unmodified L
// buffer shared by every hunk, so the pattern must be located by a true
// L-coordinate (Left.Offset), never Right.Offset: once an earlier hunk's
// insert/delete lengths differ, Right.Offset drifts away from the
// corresponding L position and indexing pre by it reads the wrong bytes.
func (h *Hunk) addContext(pre buffer.Slice, margin int) {
	if pre.Len() == 0 {
		return
	}

	patternStart, patternEnd := h.Left.Offset, h.Left.Offset+h.Left.Length
	pattern := pre.Range(patternStart, patternEnd)
	padding := 0

	for pre.IndexOf(pattern, 0) != pre.LastIndexOf(pattern) && pattern.Len() < wordBits-2*margin {
		padding += margin
		from := max0(h.Left.Offset - padding)
		to := minLen(pre.Len(), h.Left.Offset+h.Left.Length+padding)
		pattern = pre.Range(from, to)
	}
	padding += margin

	prefixFrom := max0(h.Left.Offset - padding)
	prefix := pre.Range(prefixFrom, h.Left.Offset)
	suffixTo := minLen(pre.Len(), h.Left.Offset+h.Left.Length+padding)
	suffix := pre.Range(h.Left.Offset+h.Left.Length, suffixTo)

	if prefix.Len() > 0 {
		h.Edits = append([]Fragment{newFragment(OpEqual, prefix)}, h.Edits...)
	}
	if suffix.Len() > 0 {
		h.Edits = append(h.Edits, newFragment(OpEqual, suffix))
	}

	h.Left.Offset -= prefix.Len()
	h.Right.Offset -= prefix.Len()
	h.Left.Length += prefix.Len() + suffix.Len()
	h.Right.Length += prefix.Len() + suffix.Len()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}
