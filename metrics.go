package bytepatch

// Levenshtein walks the fragment sequence and, for each maximal edit run,
// adds max(inserted bytes, deleted bytes); it flushes at every EQUAL. The
// result is an upper bound on classical edit distance, used as a quality
// score for imperfect patch application (§4.3.6).
func (d Diff) Levenshtein() int {
	total, ins, del := 0, 0, 0
	flush := func() {
		if ins > del {
			total += ins
		} else {
			total += del
		}
		ins, del = 0, 0
	}
	for _, f := range d.Fragments {
		switch f.Op {
		case OpInsert:
			ins += f.Len()
		case OpDelete:
			del += f.Len()
		case OpEqual:
			flush()
		}
	}
	flush()
	return total
}

// MapIndex translates a byte position in L (loc) into the corresponding
// position in R, accounting for deletions: a position that falls inside a
// deleted run clamps to the position immediately after the deletion.
func (d Diff) MapIndex(loc int) int {
	charsL, charsR := 0, 0
	lastCharsL, lastCharsR := 0, 0
	lastOp := OpEqual
	found := false

	for _, f := range d.Fragments {
		if f.Op != OpInsert {
			charsL += f.Len()
		}
		if f.Op != OpDelete {
			charsR += f.Len()
		}
		if charsL > loc {
			lastOp = f.Op
			found = true
			break
		}
		lastCharsL, lastCharsR = charsL, charsR
	}

	if found && lastOp == OpDelete {
		return lastCharsR
	}
	return lastCharsR + (loc - lastCharsL)
}
