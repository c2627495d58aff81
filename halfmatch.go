package bytepatch

import "github.com/dacharyc/bytepatch/buffer"

// halfMatch is the result of §4.1.2: a substring common to both inputs,
// long enough to be worth splitting on. text1* belong to the first input
// passed to findHalfMatch, text2* to the second.
type halfMatch struct {
	text1A, text1B buffer.Slice
	text2A, text2B buffer.Slice
	commonMid      buffer.Slice
}

// findHalfMatch looks for a substring common to a and b that is at least
// half the length of the longer of the two. Returns ok=false if none
// qualifies.
func findHalfMatch(a, b buffer.Slice) (halfMatch, bool) {
	longText, shortText := a, b
	swapped := false
	if a.Len() < b.Len() {
		longText, shortText = b, a
		swapped = true
	}

	if longText.Len() < 4 || shortText.Len()*2 < longText.Len() {
		return halfMatch{}, false
	}

	hm1, ok1 := halfMatchSeed(longText, shortText, (longText.Len()+3)/4)
	hm2, ok2 := halfMatchSeed(longText, shortText, (longText.Len()+1)/2)

	var best halfMatchSeedResult
	var ok bool
	switch {
	case !ok1 && !ok2:
		return halfMatch{}, false
	case !ok2:
		best, ok = hm1, true
	case !ok1:
		best, ok = hm2, true
	default:
		ok = true
		if hm1.commonMid.Len() > hm2.commonMid.Len() {
			best = hm1
		} else {
			best = hm2
		}
	}
	if !ok {
		return halfMatch{}, false
	}

	if !swapped {
		return halfMatch{
			text1A: best.longA, text1B: best.longB,
			text2A: best.shortA, text2B: best.shortB,
			commonMid: best.commonMid,
		}, true
	}
	return halfMatch{
		text1A: best.shortA, text1B: best.shortB,
		text2A: best.longA, text2B: best.longB,
		commonMid: best.commonMid,
	}, true
}

type halfMatchSeedResult struct {
	longA, longB   buffer.Slice
	shortA, shortB buffer.Slice
	commonMid      buffer.Slice
}

// halfMatchSeed takes a quarter-length substring of longText starting at i
// as a seed, scans for all its occurrences in shortText, and keeps the
// occurrence that extends (by common prefix/suffix) the furthest.
func halfMatchSeed(longText, shortText buffer.Slice, i int) (halfMatchSeedResult, bool) {
	seed := longText.Range(i, i+longText.Len()/4)

	var best halfMatchSeedResult
	bestLen := 0
	j := shortText.IndexOf(seed, 0)
	for j != -1 {
		prefixLen := longText.Cut(i).CommonPrefixLen(shortText.Cut(j))
		suffixLen := longText.Head(i).CommonSuffixLen(shortText.Head(j))

		if bestLen < suffixLen+prefixLen {
			bestLen = suffixLen + prefixLen
			best = halfMatchSeedResult{
				commonMid: shortText.Range(j-suffixLen, j+prefixLen),
				longA:     longText.Head(i - suffixLen),
				longB:     longText.Cut(i + prefixLen),
				shortA:    shortText.Head(j - suffixLen),
				shortB:    shortText.Cut(j + prefixLen),
			}
		}
		j = shortText.IndexOf(seed, j+1)
	}

	if best.commonMid.Len()*2 >= longText.Len() {
		return best, true
	}
	return halfMatchSeedResult{}, false
}
