package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// cleanup runs the merge pass followed by the shift pass (§4.2), repeating
// the merge pass once more if the shift pass moved anything. Shifts
// strictly reduce the number of EQUAL fragments or align them with edits,
// so this converges in O(len(Fragments)) iterations.
func (d Diff) cleanup() Diff {
	d = d.cleanupMerge()
	shifted, moved := d.cleanupShift()
	if moved {
		shifted = shifted.cleanupMerge()
	}
	return shifted
}

// cleanupMerge is the merge pass: accumulate consecutive inserts/deletes,
// factor a common prefix/suffix between them into the surrounding
// equalities, and merge adjacent equalities.
func (d Diff) cleanupMerge() Diff {
	// Work against a copy with a sentinel trailing empty EQUAL, so the
	// final accumulated run always flushes.
	src := make([]Fragment, len(d.Fragments), len(d.Fragments)+1)
	copy(src, d.Fragments)
	src = append(src, newFragment(OpEqual, buffer.Empty))

	out := make([]Fragment, 0, len(src))
	var insParts, delParts []buffer.Slice

	for _, f := range src {
		switch f.Op {
		case OpInsert:
			insParts = append(insParts, f.Text)
		case OpDelete:
			delParts = append(delParts, f.Text)
		case OpEqual:
			ins := buffer.Concat(insParts...)
			del := buffer.Concat(delParts...)
			insParts, delParts = nil, nil

			if ins.Len() > 0 && del.Len() > 0 {
				if pfx := ins.CommonPrefixLen(del); pfx > 0 {
					appendOrMergeEqual(&out, ins.Head(pfx))
					ins = ins.Cut(pfx)
					del = del.Cut(pfx)
				}
				if sfx := ins.CommonSuffixLen(del); sfx > 0 {
					f.Text = buffer.Concat(ins.Tail(sfx), f.Text)
					ins = ins.Trunc(ins.Len() - sfx)
					del = del.Trunc(del.Len() - sfx)
				}
			}
			if del.Len() > 0 {
				out = append(out, newFragment(OpDelete, del))
			}
			if ins.Len() > 0 {
				out = append(out, newFragment(OpInsert, ins))
			}
			appendOrMergeEqual(&out, f.Text)
		}
	}

	// Drop a trailing empty EQUAL left by the sentinel.
	if n := len(out); n > 0 && out[n-1].Op == OpEqual && out[n-1].Len() == 0 {
		out = out[:n-1]
	}

	return Diff{Fragments: out}
}

// appendOrMergeEqual appends an EQUAL fragment, merging it into a
// preceding EQUAL fragment if one is already last in out. Empty slices are
// dropped, preserving the no-empty-fragment invariant.
func appendOrMergeEqual(out *[]Fragment, text buffer.Slice) {
	if text.Len() == 0 {
		return
	}
	if n := len(*out); n > 0 && (*out)[n-1].Op == OpEqual {
		(*out)[n-1].Text = buffer.Concat((*out)[n-1].Text, text)
		return
	}
	*out = append(*out, newFragment(OpEqual, text))
}

// cleanupShift is the shift pass (cleanupMergePhase2): for each (prev,
// this, next) triple where prev and next are EQUAL and this is a single
// edit, slide the edit left across prev if it ends with prev's bytes,
// otherwise right across next if it starts with next's bytes, eliminating
// that neighbor's EQUAL. Returns whether anything moved.
func (d Diff) cleanupShift() (Diff, bool) {
	frags := make([]Fragment, len(d.Fragments))
	copy(frags, d.Fragments)

	moved := false
	for i := 1; i+1 < len(frags); i++ {
		prev, this, next := frags[i-1], frags[i], frags[i+1]
		if prev.Op != OpEqual || next.Op != OpEqual {
			continue
		}
		if this.Op != OpInsert && this.Op != OpDelete {
			continue
		}

		switch {
		case this.Len() >= prev.Len() && endsWith(this.Text, prev.Text):
			// Shift left: this ends with prev, so prev can move inside it.
			n := prev.Len()
			newThis := buffer.Concat(prev.Text, this.Text.Trunc(this.Len()-n))
			newNext := buffer.Concat(prev.Text, next.Text)
			frags[i] = newFragment(this.Op, newThis)
			frags[i+1] = newFragment(OpEqual, newNext)
			frags[i-1] = newFragment(OpEqual, buffer.Empty)
			moved = true
		case this.Len() >= next.Len() && startsWith(this.Text, next.Text):
			// Shift right: this starts with next, so next can move inside it.
			n := next.Len()
			newPrev := buffer.Concat(prev.Text, next.Text)
			newThis := buffer.Concat(this.Text.Cut(n), next.Text)
			frags[i-1] = newFragment(OpEqual, newPrev)
			frags[i] = newFragment(this.Op, newThis)
			frags[i+1] = newFragment(OpEqual, buffer.Empty)
			moved = true
		}
	}

	// Drop the now-empty placeholder EQUALs left by shifts; cleanupMerge
	// (invoked by the caller when moved) will also re-merge adjacent
	// equalities, but filtering here keeps cleanupShift idempotent on its
	// own output.
	out := frags[:0]
	for _, f := range frags {
		if f.Op == OpEqual && f.Len() == 0 && moved {
			continue
		}
		out = append(out, f)
	}
	return Diff{Fragments: out}, moved
}

func endsWith(s, suffix buffer.Slice) bool {
	if suffix.Len() > s.Len() {
		return false
	}
	return s.Tail(suffix.Len()).Equal(suffix)
}

func startsWith(s, prefix buffer.Slice) bool {
	if prefix.Len() > s.Len() {
		return false
	}
	return s.Head(prefix.Len()).Equal(prefix)
}
