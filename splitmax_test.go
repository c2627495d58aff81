package bytepatch

import (
	"strings"
	"testing"
)

// S7: splitMax over an overlong DELETE pattern surrounded by ".bin"
// context, with margin 4, produces several fragments whose leftSpan
// lengths are each <= wordBits and whose rightSpans carry the insertion
// context correctly.
func TestSplitMaxChopsOversizeDelete(t *testing.T) {
	left := ".bin" + strings.Repeat("X", 57) + ".bin"
	right := ".bin" + ".bin"

	d := Build([]byte(left), []byte(right), WithUnboundedDeadline())
	p, err := NewPatchFromTexts([]byte(left), d, WithPatchMargin(4))
	if err != nil {
		t.Fatalf("NewPatchFromTexts error: %v", err)
	}
	if len(p.Hunks) != 1 {
		t.Fatalf("before split: got %d hunks, want 1", len(p.Hunks))
	}
	if p.Hunks[0].Left.Length <= wordBits {
		t.Fatalf("before split: left span length %d, want > %d", p.Hunks[0].Left.Length, wordBits)
	}

	split := splitMax(p.Hunks, 4)
	if len(split) < 2 {
		t.Fatalf("splitMax produced %d hunks, want several", len(split))
	}
	for i, h := range split {
		if h.Left.Length > wordBits {
			t.Errorf("hunk %d: left span length %d exceeds wordBits (%d)", i, h.Left.Length, wordBits)
		}
		if h.empty() {
			t.Errorf("hunk %d: unexpectedly carries no edit", i)
		}
	}

	// Every hunk's span-sum invariant must still hold after splitting.
	for i, h := range split {
		var leftSum, rightSum int
		for _, f := range h.Edits {
			if f.Op != OpInsert {
				leftSum += f.Len()
			}
			if f.Op != OpDelete {
				rightSum += f.Len()
			}
		}
		if leftSum != h.Left.Length {
			t.Errorf("hunk %d: left span length %d, edit sum %d", i, h.Left.Length, leftSum)
		}
		if rightSum != h.Right.Length {
			t.Errorf("hunk %d: right span length %d, edit sum %d", i, h.Right.Length, rightSum)
		}
	}
}

// A hunk at or under wordBits bytes passes through splitMax untouched.
func TestSplitMaxPassesThroughSmallHunks(t *testing.T) {
	d := Build([]byte("abc"), []byte("axc"), WithUnboundedDeadline())
	p, err := NewPatchFromTexts([]byte("abc"), d)
	if err != nil {
		t.Fatalf("NewPatchFromTexts error: %v", err)
	}
	split := splitMax(p.Hunks, 4)
	if len(split) != len(p.Hunks) {
		t.Fatalf("splitMax changed hunk count for a small patch: got %d, want %d", len(split), len(p.Hunks))
	}
}
