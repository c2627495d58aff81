package bytepatch

import (
	"fmt"

	"github.com/dacharyc/bytepatch/bitap"
	"github.com/dacharyc/bytepatch/buffer"
)

// applyPadding implements §4.3.4: build a sentinel buffer of synthetic
// bytes (1..paddingLength) and return a deep copy of hunks shifted forward
// by paddingLength, with the first and last hunks extended so their
// leading/trailing EQUAL fully covers the padding. This guarantees bitap
// has context to anchor against at the document edges.
func applyPadding(hunks []Hunk, paddingLength int) ([]Hunk, buffer.Slice) {
	raw := make([]byte, paddingLength)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	pad := buffer.New(raw)

	out := make([]Hunk, len(hunks))
	for i, h := range hunks {
		out[i] = Hunk{
			Left:  Span{Offset: h.Left.Offset + paddingLength, Length: h.Left.Length},
			Right: Span{Offset: h.Right.Offset + paddingLength, Length: h.Right.Length},
			Edits: append([]Fragment{}, h.Edits...),
		}
	}
	if len(out) == 0 {
		return out, pad
	}

	first := &out[0]
	switch {
	case len(first.Edits) == 0 || first.Edits[0].Op != OpEqual:
		first.Edits = append([]Fragment{newFragment(OpEqual, pad)}, first.Edits...)
		first.Left.Offset -= paddingLength
		first.Right.Offset -= paddingLength
		first.Left.Length += paddingLength
		first.Right.Length += paddingLength
	case paddingLength > first.Edits[0].Len():
		extra := paddingLength - first.Edits[0].Len()
		first.Edits[0] = newFragment(OpEqual, buffer.Concat(pad.Tail(extra), first.Edits[0].Text))
		first.Left.Offset -= extra
		first.Right.Offset -= extra
		first.Left.Length += extra
		first.Right.Length += extra
	}

	last := &out[len(out)-1]
	lastIdx := len(last.Edits) - 1
	switch {
	case lastIdx < 0 || last.Edits[lastIdx].Op != OpEqual:
		last.Edits = append(last.Edits, newFragment(OpEqual, pad))
		last.Left.Length += paddingLength
		last.Right.Length += paddingLength
	case paddingLength > last.Edits[lastIdx].Len():
		extra := paddingLength - last.Edits[lastIdx].Len()
		last.Edits[lastIdx] = newFragment(OpEqual, buffer.Concat(last.Edits[lastIdx].Text, pad.Head(extra)))
		last.Left.Length += extra
		last.Right.Length += extra
	}

	return out, pad
}

// Apply implements §4.3.5: fuzzily locate and substitute each hunk in
// target, returning the patched bytes and a per-hunk applied bitset.
func (p Patch) Apply(target []byte, opts ...PatchOption) ([]byte, []bool, error) {
	cfg := p.cfg
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(p.Hunks) == 0 {
		return append([]byte{}, target...), nil, nil
	}
	if cfg.paddingLength >= wordBits {
		return nil, nil, fmt.Errorf("%w: padding length %d must be less than %d", ErrInvalidArgument, cfg.paddingLength, wordBits)
	}

	padded, pad := applyPadding(p.Hunks, cfg.paddingLength)
	padded = splitMax(padded, cfg.margin)

	patched := buffer.Concat(pad, buffer.New(target), pad)
	matcher := bitap.New(cfg.bitapConfig)

	applied := make([]bool, len(padded))
	delta := 0

	for i, h := range padded {
		expected := h.Right.Offset + delta
		if expected < 0 || expected > patched.Len() {
			return nil, nil, fmt.Errorf("%w: hunk %d expected at %d, buffer is %d bytes", ErrInputTooShort, i, expected, patched.Len())
		}
		left := h.leftText()

		var startLoc, endLoc int
		endLoc = -1
		var found bool

		if left.Len() > wordBits {
			var startOK, endOK bool
			startLoc, startOK = matcher.Execute(patched.Bytes(), left.Head(wordBits).Bytes(), expected)
			if startOK {
				endLoc, endOK = matcher.Execute(patched.Bytes(), left.Tail(wordBits).Bytes(), expected+left.Len()-wordBits)
				found = endOK && startLoc < endLoc
			}
		} else {
			startLoc, found = matcher.Execute(patched.Bytes(), left.Bytes(), expected)
		}

		if !found {
			delta -= h.Right.Length - h.Left.Length
			continue
		}

		delta = startLoc - expected

		var patchedText buffer.Slice
		if endLoc == -1 {
			end := minLen(startLoc+left.Len(), patched.Len())
			patchedText = patched.Range(startLoc, end)
		} else {
			end := minLen(endLoc+wordBits, patched.Len())
			patchedText = patched.Range(startLoc, end)
		}

		if patchedText.Equal(left) {
			replacement := h.rightText()
			patched = buffer.Concat(patched.Trunc(startLoc), replacement, patched.Cut(startLoc+left.Len()))
			applied[i] = true
			continue
		}

		repaired, ok := repairImperfectMatch(patched, startLoc, left, patchedText, h, cfg.deleteThreshold)
		if ok {
			patched = repaired
			applied[i] = true
		}
	}

	strip := cfg.paddingLength
	result := patched.Range(strip, patched.Len()-strip)
	return append([]byte{}, result.Bytes()...), applied, nil
}

// repairImperfectMatch implements §4.3.6: bitap located the fragment's
// region but its bytes disagree with left. Diff left against what's
// actually there and replay the individual edits, gated by deleteThreshold.
//
// idx1 advances over EQUAL and INSERT edits but not over DELETE edits, so
// after each replayed edit it already counts the bytes that earlier
// inserts added and earlier deletes removed; a second edit within the same
// hunk therefore lands correctly without any separate running offset.
func repairImperfectMatch(patched buffer.Slice, startLoc int, left, patchedText buffer.Slice, h Hunk, deleteThreshold float64) (buffer.Slice, bool) {
	var diffOpts []DiffOption
	if minLen(left.Len(), patchedText.Len()) < 1<<20 {
		diffOpts = append(diffOpts, WithUnboundedDeadline())
	}
	d := Build(left.Bytes(), patchedText.Bytes(), diffOpts...)

	if left.Len() > wordBits && float64(d.Levenshtein())/float64(left.Len()) > deleteThreshold {
		return buffer.Empty, false
	}

	idx1 := 0
	for _, f := range h.Edits {
		if f.Op != OpEqual {
			pos := startLoc + d.MapIndex(idx1)
			switch f.Op {
			case OpInsert:
				patched = buffer.Concat(patched.Trunc(pos), f.Text, patched.Cut(pos))
			case OpDelete:
				end := startLoc + d.MapIndex(idx1+f.Len())
				patched = buffer.Concat(patched.Trunc(pos), patched.Cut(end))
			}
		}
		if f.Op != OpDelete {
			idx1 += f.Len()
		}
	}
	return patched, true
}
