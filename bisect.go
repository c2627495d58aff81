package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// bisect implements Myers' O(ND) middle-snake search (§4.1.3). When the
// deadline expires mid-search, the current subproblem degrades to a single
// DELETE/INSERT pair; the surrounding recursion still completes, so a
// timeout yields a valid but non-minimal diff.
func bisect(a, b buffer.Slice, cfg *diffConfig) []Fragment {
	m, n := a.Len(), b.Len()
	dMax := (m + n + 1) / 2
	vOffset := dMax
	vLen := 2 * dMax

	v1 := make([]int, vLen)
	v2 := make([]int, vLen)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := m - n
	// When delta is odd, the forward path can overlap the reverse path;
	// when it's even, the reverse path can overlap the forward path.
	front := delta%2 != 0

	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d < dMax; d++ {
		if cfg.expired() {
			break
		}

		// Forward pass.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < m && y1 < n && a.At(x1) == b.At(y1) {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			switch {
			case x1 > m:
				k1end += 2
			case y1 > n:
				k1start += 2
			case front:
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLen && v2[k2Offset] != -1 {
					x2 := m - v2[k2Offset]
					if x1 >= x2 {
						return bisectSplit(a, b, x1, y1, cfg)
					}
				}
			}
		}

		// Reverse pass.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < m && y2 < n && a.At(m-x2-1) == b.At(n-y2-1) {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			switch {
			case x2 > m:
				k2end += 2
			case y2 > n:
				k2start += 2
			case !front:
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLen && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := vOffset + x1 - k1Offset
					mirroredX2 := m - x2
					if x1 >= mirroredX2 {
						return bisectSplit(a, b, x1, y1, cfg)
					}
				}
			}
		}
	}

	// Deadline expired, or the inputs differ completely within the budget.
	return []Fragment{
		newFragment(OpDelete, a),
		newFragment(OpInsert, b),
	}
}

// bisectSplit recurses on the head (a[:x], b[:y]) and tail (a[x:], b[y:])
// found by bisect, concatenating the results. Each half is a full buildDiff
// call, so it gets its own equality shortcut, affix trim, and cleanup.
func bisectSplit(a, b buffer.Slice, x, y int, cfg *diffConfig) []Fragment {
	headA, headB := a.Trunc(x), b.Trunc(y)
	tailA, tailB := a.Cut(x), b.Cut(y)

	head := buildDiff(headA, headB, cfg)
	tail := buildDiff(tailA, tailB, cfg)

	out := make([]Fragment, 0, len(head.Fragments)+len(tail.Fragments))
	out = append(out, head.Fragments...)
	out = append(out, tail.Fragments...)
	return out
}
