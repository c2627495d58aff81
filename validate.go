package bytepatch

import "fmt"

// Validate walks every Hunk and checks the span-sum invariant from §3:
// the total length of non-INSERT edits must equal Left.Length, and the
// total length of non-DELETE edits must equal Right.Length. Reverse and
// ParsePatch both call this internally instead of trusting the invariant
// silently.
func (p Patch) Validate() error {
	for i, h := range p.Hunks {
		var leftSum, rightSum int
		for _, f := range h.Edits {
			if f.Op != OpInsert {
				leftSum += f.Len()
			}
			if f.Op != OpDelete {
				rightSum += f.Len()
			}
		}
		if leftSum != h.Left.Length {
			return fmt.Errorf("%w: hunk %d: left span length %d does not match edit sum %d", ErrInvalidArgument, i, h.Left.Length, leftSum)
		}
		if rightSum != h.Right.Length {
			return fmt.Errorf("%w: hunk %d: right span length %d does not match edit sum %d", ErrInvalidArgument, i, h.Right.Length, rightSum)
		}
	}
	return nil
}
