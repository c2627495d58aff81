package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// splitMax implements §4.3.3: chop every hunk whose left span exceeds
// wordBits into several smaller hunks, each carrying enough rolling
// context at its boundaries to stay independently anchorable by bitap.
func splitMax(hunks []Hunk, margin int) []Hunk {
	if margin > wordBits-1 {
		margin = wordBits - 1
	}
	budget := wordBits - margin

	var result []Hunk
	for _, h := range hunks {
		if h.Left.Length <= wordBits {
			result = append(result, h)
			continue
		}
		result = append(result, splitHunk(h, margin, budget)...)
	}
	return result
}

func splitHunk(h Hunk, margin, budget int) []Hunk {
	var out []Hunk
	startL, startR := h.Left.Offset, h.Right.Offset
	precontext := buffer.Empty
	queue := append([]Fragment{}, h.Edits...)

	for len(queue) > 0 {
		sub := Hunk{Left: Span{Offset: startL - precontext.Len()}, Right: Span{Offset: startR - precontext.Len()}}
		empty := true

		if precontext.Len() > 0 {
			sub.Left.Length = precontext.Len()
			sub.Right.Length = precontext.Len()
			sub.Edits = append(sub.Edits, newFragment(OpEqual, precontext))
		}

		for len(queue) > 0 && sub.Left.Length < budget {
			f := queue[0]
			switch {
			case f.Op == OpInsert:
				sub.Right.Length += f.Len()
				startR += f.Len()
				sub.Edits = append(sub.Edits, f)
				queue = queue[1:]
				empty = false

			case f.Op == OpDelete && len(sub.Edits) == 1 && sub.Edits[0].Op == OpEqual && f.Len() > 2*wordBits:
				sub.Left.Length += f.Len()
				startL += f.Len()
				sub.Edits = append(sub.Edits, f)
				queue = queue[1:]
				empty = false

			default:
				take := minLen(f.Len(), budget-sub.Left.Length)
				text := f.Text.Head(take)
				sub.Left.Length += take
				startL += take
				if f.Op == OpEqual {
					sub.Right.Length += take
					startR += take
				} else {
					empty = false
				}
				sub.Edits = append(sub.Edits, newFragment(f.Op, text))
				if take == f.Len() {
					queue = queue[1:]
				} else {
					queue[0] = newFragment(f.Op, f.Text.Cut(take))
				}
			}
		}

		rt := sub.rightText()
		precontext = rt.Tail(minLen(margin, rt.Len()))

		remaining := leftTextOf(queue)
		postcontext := remaining.Head(minLen(margin, remaining.Len()))
		if postcontext.Len() > 0 {
			sub.Left.Length += postcontext.Len()
			sub.Right.Length += postcontext.Len()
			if n := len(sub.Edits); n > 0 && sub.Edits[n-1].Op == OpEqual {
				sub.Edits[n-1].Text = buffer.Concat(sub.Edits[n-1].Text, postcontext)
			} else {
				sub.Edits = append(sub.Edits, newFragment(OpEqual, postcontext))
			}
		}

		if !empty {
			out = append(out, sub)
		}
	}
	return out
}

// leftTextOf concatenates the non-INSERT fragments of a pending edit queue,
// reconstructing the L-side view of whatever splitHunk hasn't consumed yet.
func leftTextOf(edits []Fragment) buffer.Slice {
	var parts []buffer.Slice
	for _, f := range edits {
		if f.Op != OpInsert {
			parts = append(parts, f.Text)
		}
	}
	return buffer.Concat(parts...)
}
