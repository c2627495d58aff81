// Package bitap implements the Baeza-Yates-Gonnet approximate string
// matching algorithm (bitmasked word-level parallelism), bounded to
// patterns of at most MaxPattern bytes — the word width the patch engine's
// 32-bit matching window is built around.
//
// Ported from the classic diff-match-patch match_bitap/match_alphabet/
// match_bitapScore trio (see other_examples/sergi-go-diff__dmp.go in the
// project's reference corpus) and adapted to operate on bytes instead of
// runes, since this module's diffing is byte-exact throughout.
package bitap

import (
	"bytes"
	"math"
)

// MaxPattern is the largest pattern Execute accepts, fixed by the 32-bit
// word width the patch engine's fragments are split to fit.
const MaxPattern = 32

// Config holds the tunables for fuzzy matching.
type Config struct {
	// Distance controls how far from the expected location a match may be
	// found before being penalized. 0 = exact location only. 1000+ = broad.
	Distance int
	// Threshold is the highest score (0.0 = perfect, 1.0 = anything) at
	// which a match is still accepted.
	Threshold float64
}

// DefaultConfig mirrors the historical diff-match-patch defaults.
func DefaultConfig() Config {
	return Config{Distance: 1000, Threshold: 0.5}
}

// Matcher executes fuzzy substring search with a fixed Config.
type Matcher struct {
	cfg Config
}

// New returns a Matcher configured with cfg.
func New(cfg Config) Matcher {
	return Matcher{cfg: cfg}
}

// Execute searches haystack for pattern near nearLoc, returning the
// absolute index of the best match within threshold, or (0, false) if no
// match scores acceptably (the core's local NO_MATCH signal).
//
// len(pattern) must be <= MaxPattern.
func (m Matcher) Execute(haystack, pattern []byte, nearLoc int) (int, bool) {
	if len(pattern) == 0 {
		if nearLoc < 0 {
			nearLoc = 0
		}
		if nearLoc > len(haystack) {
			nearLoc = len(haystack)
		}
		return nearLoc, true
	}

	threshold := m.cfg.Threshold

	// Speedup: an exact match nearby tightens the threshold immediately.
	if idx := bytes.Index(haystack, pattern); idx != -1 {
		threshold = math.Min(m.score(0, idx, nearLoc, len(pattern)), threshold)
		if idx2 := bytes.LastIndex(haystack, pattern); idx2 != -1 {
			threshold = math.Min(m.score(0, idx2, nearLoc, len(pattern)), threshold)
		}
	}

	alphabet := buildAlphabet(pattern)
	matchMask := 1 << uint(len(pattern)-1)
	bestLoc := -1

	binMax := len(pattern) + len(haystack)
	var lastRow []int

	for d := 0; d < len(pattern); d++ {
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if m.score(d, nearLoc+binMid, nearLoc, len(pattern)) <= threshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := max(1, nearLoc-binMid+1)
		finish := min(nearLoc+binMid, len(haystack)) + len(pattern)

		row := make([]int, finish+2)
		row[finish+1] = (1 << uint(d)) - 1

		for j := finish; j >= start; j-- {
			var charMatch int
			if j-1 < len(haystack) {
				charMatch = alphabet[haystack[j-1]]
			}
			if d == 0 {
				row[j] = ((row[j+1] << 1) | 1) & charMatch
			} else {
				row[j] = (((row[j+1] << 1) | 1) & charMatch) | (((lastRow[j+1] | lastRow[j]) << 1) | 1) | lastRow[j+1]
			}
			if row[j]&matchMask != 0 {
				s := m.score(d, j-1, nearLoc, len(pattern))
				if s <= threshold {
					threshold = s
					bestLoc = j - 1
					if bestLoc > nearLoc {
						start = max(1, 2*nearLoc-bestLoc)
					} else {
						break
					}
				}
			}
		}
		if m.score(d+1, nearLoc, nearLoc, len(pattern)) > threshold {
			break
		}
		lastRow = row
	}

	if bestLoc == -1 {
		return 0, false
	}
	return bestLoc, true
}

// score computes the bitap score (0.0 good, 1.0 bad) for a candidate match
// with e errors found at x, given the expected location loc.
func (m Matcher) score(e, x, loc, patternLen int) float64 {
	accuracy := float64(e) / float64(patternLen)
	proximity := math.Abs(float64(loc - x))
	if m.cfg.Distance == 0 {
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + proximity/float64(m.cfg.Distance)
}

// buildAlphabet maps each byte in pattern to a bitmask of the positions it
// occurs at (match_alphabet).
func buildAlphabet(pattern []byte) [256]int {
	var alphabet [256]int
	for i, c := range pattern {
		alphabet[c] |= 1 << uint(len(pattern)-i-1)
	}
	return alphabet
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
