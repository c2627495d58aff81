package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// Fragment pairs an Operation with the buffer slice it applies to. No
// fragment in a canonicalized Diff carries a zero-length Text (§4.2 merge
// pass drops them).
type Fragment struct {
	Op   Operation
	Text buffer.Slice
}

// Len returns the fragment's byte length.
func (f Fragment) Len() int {
	return f.Text.Len()
}

// Equal reports whether two fragments have the same operation and bytes.
func (f Fragment) Equal(other Fragment) bool {
	return f.Op == other.Op && f.Text.Equal(other.Text)
}

func newFragment(op Operation, text buffer.Slice) Fragment {
	return Fragment{Op: op, Text: text}
}
