package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// Diff is an ordered sequence of Fragments. Concatenating the Text of every
// non-INSERT fragment reproduces L; concatenating every non-DELETE
// fragment's Text reproduces R.
type Diff struct {
	Fragments []Fragment
}

// Build computes a canonical Diff between L and R. Equality shortcut,
// common-affix trim, middle compute, and cleanup all run in the order
// specified by §4.1.
func Build(l, r []byte, opts ...DiffOption) Diff {
	cfg := defaultDiffConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return buildDiff(buffer.New(l), buffer.New(r), cfg)
}

func buildDiff(l, r buffer.Slice, cfg *diffConfig) Diff {
	// 1. Equality shortcut.
	if l.Equal(r) {
		if l.Len() == 0 {
			return Diff{}
		}
		return Diff{Fragments: []Fragment{newFragment(OpEqual, l)}}
	}

	// 2. Common-affix trim.
	var frags []Fragment
	prefixLen := l.CommonPrefixLen(r)
	if prefixLen > 0 {
		frags = append(frags, newFragment(OpEqual, l.Head(prefixLen)))
		l = l.Cut(prefixLen)
		r = r.Cut(prefixLen)
	}

	suffixLen := l.CommonSuffixLen(r)
	var suffix buffer.Slice
	if suffixLen > 0 {
		suffix = l.Tail(suffixLen)
		l = l.Trunc(l.Len() - suffixLen)
		r = r.Trunc(r.Len() - suffixLen)
	}

	// 3. Middle compute on the trimmed middles.
	frags = append(frags, middleCompute(l, r, cfg)...)

	// 4. Append the remembered suffix.
	if suffixLen > 0 {
		frags = append(frags, newFragment(OpEqual, suffix))
	}

	d := Diff{Fragments: frags}
	return d.cleanup()
}

// Extract concatenates the Text of every fragment whose Op != ignoreOp.
// With ignoreOp = OpInsert this reconstructs L; with OpDelete it
// reconstructs R.
func (d Diff) Extract(ignoreOp Operation) buffer.Slice {
	var parts []buffer.Slice
	for _, f := range d.Fragments {
		if f.Op != ignoreOp {
			parts = append(parts, f.Text)
		}
	}
	return buffer.Concat(parts...)
}

// DiffStats summarizes a Diff's shape.
type DiffStats struct {
	Equal, Inserted, Deleted int
	Fragments                int
}

// Stats reports byte counts per operation and the fragment count.
func (d Diff) Stats() DiffStats {
	var s DiffStats
	s.Fragments = len(d.Fragments)
	for _, f := range d.Fragments {
		switch f.Op {
		case OpEqual:
			s.Equal += f.Len()
		case OpInsert:
			s.Inserted += f.Len()
		case OpDelete:
			s.Deleted += f.Len()
		}
	}
	return s
}
