package bytepatch

// Reverse produces a patch applicable to R that yields L: every hunk's
// Left/Right spans swap and every INSERT/DELETE edit flips sense. Left and
// Right spans always carry true positions in L and R respectively (this
// package's patch construction never rolls its pre-patch buffer forward,
// unlike the historical dmp port), so no cumulative offset correction is
// needed beyond the swap itself.
func (p Patch) Reverse() (Patch, error) {
	if err := p.Validate(); err != nil {
		return Patch{}, err
	}

	hunks := make([]Hunk, len(p.Hunks))
	for i, h := range p.Hunks {
		edits := make([]Fragment, len(h.Edits))
		for j, f := range h.Edits {
			edits[j] = newFragment(reverseOp(f.Op), f.Text)
		}
		hunks[i] = Hunk{Left: h.Right, Right: h.Left, Edits: edits}
	}

	out := Patch{Hunks: hunks, cfg: p.cfg}
	if err := out.Validate(); err != nil {
		return Patch{}, err
	}
	return out, nil
}

func reverseOp(op Operation) Operation {
	switch op {
	case OpInsert:
		return OpDelete
	case OpDelete:
		return OpInsert
	default:
		return op
	}
}
