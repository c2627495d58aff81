package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// middleCompute implements §4.1.1: given middles a, b with no common prefix
// or suffix, an empty side yields a single INSERT or DELETE of the other;
// otherwise try the substring shortcut, then the single-byte shortcut,
// then half-match, and finally fall back to bisect.
func middleCompute(a, b buffer.Slice, cfg *diffConfig) []Fragment {
	if a.Len() == 0 {
		return []Fragment{newFragment(OpInsert, b)}
	}
	if b.Len() == 0 {
		return []Fragment{newFragment(OpDelete, a)}
	}

	longer, shorter := a, b
	longerIsA := true
	if b.Len() > a.Len() {
		longer, shorter = b, a
		longerIsA = false
	}

	// 1. Substring shortcut.
	if pos := longer.IndexOf(shorter, 0); pos != -1 {
		pre := longer.Head(pos)
		post := longer.Cut(pos + shorter.Len())
		op := OpInsert
		if longerIsA {
			op = OpDelete
		}
		var out []Fragment
		if pre.Len() > 0 {
			out = append(out, newFragment(op, pre))
		}
		out = append(out, newFragment(OpEqual, shorter))
		if post.Len() > 0 {
			out = append(out, newFragment(op, post))
		}
		return out
	}

	// 2. Single-byte shortcut.
	if shorter.Len() == 1 {
		return []Fragment{
			newFragment(OpDelete, a),
			newFragment(OpInsert, b),
		}
	}

	// 3. Half-match shortcut, skipped when time is unlimited so we don't
	// trade away minimality for speed we don't need.
	if cfg.halfMatch && !cfg.isUnbounded() {
		if hm, ok := findHalfMatch(a, b); ok {
			headA := buildDiff(hm.text1A, hm.text2A, cfg)
			tailA := buildDiff(hm.text1B, hm.text2B, cfg)
			out := append([]Fragment{}, headA.Fragments...)
			out = append(out, newFragment(OpEqual, hm.commonMid))
			out = append(out, tailA.Fragments...)
			return out
		}
	}

	// 4. Bisect.
	return bisect(a, b, cfg)
}
