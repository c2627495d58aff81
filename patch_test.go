package bytepatch

import (
	"strings"
	"testing"
)

func buildPatch(t *testing.T, left, right []byte) (Diff, Patch) {
	t.Helper()
	d := Build(left, right, WithUnboundedDeadline())
	p, err := NewPatchFromTexts(left, d)
	if err != nil {
		t.Fatalf("NewPatchFromTexts(%q, ...) error: %v", left, err)
	}
	return d, p
}

// Property 5: apply(Patch(Diff(L, R)), L) == R, for every hunk applied.
func TestPatchRoundTrip(t *testing.T) {
	cases := [][2]string{
		{"abc", "axc"},
		{"Now is the time for all good men to come to the aid of their country.",
			"Now is the time for all good men to come to the aid of their party."},
		{"mississippi", "mississauga"},
		{"head" + strings.Repeat("X", 100) + "tail", "headtail"},
		{"", "hello"},
		{"hello", ""},
		// Two hunks separated by a long EQUAL run, where the first hunk's
		// net length delta (+4 bytes) must not corrupt the second hunk's
		// context lookup against L.
		{
			strings.Repeat("A", 10) + "Z" + strings.Repeat("B", 10) + "Q" + strings.Repeat("C", 10),
			strings.Repeat("A", 10) + "12345" + strings.Repeat("B", 10) + "q" + strings.Repeat("C", 10),
		},
	}
	for _, c := range cases {
		left, right := []byte(c[0]), []byte(c[1])
		_, p := buildPatch(t, left, right)

		patched, applied, err := p.Apply(left)
		if err != nil {
			t.Fatalf("Apply(%q) error: %v", c[0], err)
		}
		for i, ok := range applied {
			if !ok {
				t.Errorf("case %q -> %q: hunk %d failed to apply", c[0], c[1], i)
			}
		}
		if string(patched) != c[1] {
			t.Errorf("Apply(%q) = %q, want %q", c[0], patched, c[1])
		}
	}
}

// Property 6: apply(Reverse(Patch(Diff(L, R))), R) == L.
func TestPatchReverseRoundTrip(t *testing.T) {
	cases := [][2]string{
		{"abc", "axc"},
		{"Apples are a fruit.", "Bananas are also fruit."},
		{"head" + strings.Repeat("X", 100) + "tail", "headtail"},
	}
	for _, c := range cases {
		left, right := []byte(c[0]), []byte(c[1])
		_, p := buildPatch(t, left, right)

		rp, err := p.Reverse()
		if err != nil {
			t.Fatalf("Reverse() error for %q -> %q: %v", c[0], c[1], err)
		}
		patched, applied, err := rp.Apply(right)
		if err != nil {
			t.Fatalf("Apply(reverse) error: %v", err)
		}
		for i, ok := range applied {
			if !ok {
				t.Errorf("case %q -> %q: reversed hunk %d failed to apply", c[0], c[1], i)
			}
		}
		if string(patched) != c[0] {
			t.Errorf("Apply(Reverse(patch), %q) = %q, want %q", c[1], patched, c[0])
		}
	}
}

func TestPatchApplyFuzzyAgainstDriftedTarget(t *testing.T) {
	left := []byte("Now is the time for all good men to come to the aid of their country.")
	right := []byte("Now is the time for all good men to come to the aid of their party.")
	_, p := buildPatch(t, left, right)

	drifted := []byte("XXXNow is the time for all good men to come to the aid of their country.")
	patched, applied, err := p.Apply(drifted)
	if err != nil {
		t.Fatalf("Apply(drifted) error: %v", err)
	}
	for i, ok := range applied {
		if !ok {
			t.Fatalf("hunk %d failed to apply against drifted target", i)
		}
	}
	want := "XXXNow is the time for all good men to come to the aid of their party."
	if string(patched) != want {
		t.Fatalf("Apply(drifted) = %q, want %q", patched, want)
	}
}

// addContext must index the hunk's footprint in L (Left.Offset), not R
// (Right.Offset): once an earlier hunk's insert/delete lengths differ,
// Right.Offset drifts away from the true L position and indexing by it
// pulls context from the wrong place in L. This builds a diff with two
// hunks separated by a long EQUAL run, where the first hunk nets +4 bytes,
// and checks the second hunk's own leftText against the true L slice at
// its Left span.
func TestAddContextIndexesSecondHunkByLeftOffset(t *testing.T) {
	left := []byte(strings.Repeat("A", 10) + "Z" + strings.Repeat("B", 10) + "Q" + strings.Repeat("C", 10))
	right := []byte(strings.Repeat("A", 10) + "12345" + strings.Repeat("B", 10) + "q" + strings.Repeat("C", 10))
	_, p := buildPatch(t, left, right)

	if len(p.Hunks) != 2 {
		t.Fatalf("got %d hunks, want 2 (one per edit, separated by the 10-byte B run)", len(p.Hunks))
	}

	for i, h := range p.Hunks {
		want := string(left[h.Left.Offset : h.Left.Offset+h.Left.Length])
		if got := h.leftText().String(); got != want {
			t.Errorf("hunk %d: leftText() = %q, want %q (L[%d:%d])", i, got, want, h.Left.Offset, h.Left.Offset+h.Left.Length)
		}
	}

	patched, applied, err := p.Apply(left)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	for i, ok := range applied {
		if !ok {
			t.Fatalf("hunk %d failed to apply", i)
		}
	}
	if string(patched) != string(right) {
		t.Fatalf("Apply(left) = %q, want %q", patched, right)
	}
}

func TestPatchApplyAgainstUnrelatedBufferRejectsHunk(t *testing.T) {
	left := []byte("Now is the time for all good men to come to the aid of their country.")
	right := []byte("Now is the time for all good men to come to the aid of their party.")
	_, p := buildPatch(t, left, right)

	unrelated := []byte("completely different content that shares nothing with the original")
	_, applied, err := p.Apply(unrelated)
	if err != nil {
		t.Fatalf("Apply(unrelated) error: %v", err)
	}
	for i, ok := range applied {
		if ok {
			t.Fatalf("hunk %d applied against unrelated buffer, want rejection", i)
		}
	}
}

// S5: a patch built from "XY" -> "XtestY" applies cleanly to its own left
// buffer, producing "XtestY" with the single hunk's bit set.
func TestPatchApplyEdgeCaseShortBuffers(t *testing.T) {
	left := []byte("XY")
	right := []byte("XtestY")
	_, p := buildPatch(t, left, right)

	patched, applied, err := p.Apply(left)
	if err != nil {
		t.Fatalf("Apply(%q) error: %v", left, err)
	}
	for i, ok := range applied {
		if !ok {
			t.Fatalf("hunk %d failed to apply to %q", i, left)
		}
	}
	if string(patched) != string(right) {
		t.Fatalf("Apply(%q) = %q, want %q", left, patched, right)
	}
}

func TestPatchValidateRejectsBadSpanSum(t *testing.T) {
	p := Patch{Hunks: []Hunk{{
		Left:  Span{Offset: 0, Length: 5},
		Right: Span{Offset: 0, Length: 1},
		Edits: frags(OpInsert, "x"),
	}}}
	if err := p.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want an error for mismatched span sums")
	}
}
