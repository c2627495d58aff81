package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// Patch is an ordered list of Hunks plus the tunables needed to apply them
// fuzzily against a possibly-drifted buffer.
type Patch struct {
	Hunks []Hunk
	cfg   patchConfig
}

// NewPatch builds a Patch from a Diff, deriving the pre-patch buffer (L) by
// extracting it from the diff itself.
func NewPatch(d Diff, opts ...PatchOption) (Patch, error) {
	return NewPatchFromTexts(d.Extract(OpInsert).Bytes(), d, opts...)
}

// NewPatchFromTexts builds a Patch from a Diff and the caller's own copy of
// L, avoiding re-deriving it via Extract when the caller already has it.
func NewPatchFromTexts(left []byte, d Diff, opts ...PatchOption) (Patch, error) {
	cfg := defaultPatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if left == nil {
		return Patch{}, ErrInvalidArgument
	}

	pre := buffer.New(left)
	hunks := buildHunks(d, pre, cfg.margin)

	p := Patch{Hunks: hunks, cfg: *cfg}
	if err := p.Validate(); err != nil {
		return Patch{}, err
	}
	return p, nil
}

// buildHunks implements §4.3.1: walk the diff tracking running byte counts,
// opening a Hunk on the first non-EQUAL fragment and closing it once a long
// enough EQUAL run is seen, calling addContext against pre at each close.
func buildHunks(d Diff, pre buffer.Slice, margin int) []Hunk {
	var hunks []Hunk
	var cur Hunk
	open := false
	bytesL, bytesR := 0, 0
	n := len(d.Fragments)

	closeCurrent := func() {
		cur.addContext(pre, margin)
		hunks = append(hunks, cur)
		cur = Hunk{}
		open = false
	}

	for i, f := range d.Fragments {
		if !open && f.Op != OpEqual {
			cur = Hunk{Left: Span{Offset: bytesL}, Right: Span{Offset: bytesR}}
			open = true
		}

		switch f.Op {
		case OpInsert:
			cur.Edits = append(cur.Edits, f)
			cur.Right.Length += f.Len()
		case OpDelete:
			cur.Edits = append(cur.Edits, f)
			cur.Left.Length += f.Len()
		case OpEqual:
			if open && f.Len() <= 2*margin && i != n-1 {
				cur.Edits = append(cur.Edits, f)
				cur.Left.Length += f.Len()
				cur.Right.Length += f.Len()
			}
			if open && f.Len() >= 2*margin {
				closeCurrent()
			}
		}

		if f.Op != OpInsert {
			bytesL += f.Len()
		}
		if f.Op != OpDelete {
			bytesR += f.Len()
		}
	}
	if open {
		closeCurrent()
	}
	return hunks
}
