package bytepatch

import (
	"testing"

	"github.com/dacharyc/bytepatch/buffer"
)

// S6: HalfMatch("1234567890","a345678z") splits on the shared "345678".
func TestFindHalfMatchSplits(t *testing.T) {
	a := buffer.New([]byte("1234567890"))
	b := buffer.New([]byte("a345678z"))

	hm, ok := findHalfMatch(a, b)
	if !ok {
		t.Fatalf("findHalfMatch(%q, %q) = no match, want a match", a.String(), b.String())
	}
	check := func(name string, got buffer.Slice, want string) {
		if got.String() != want {
			t.Errorf("%s = %q, want %q", name, got.String(), want)
		}
	}
	check("text1A", hm.text1A, "12")
	check("text1B", hm.text1B, "90")
	check("text2A", hm.text2A, "a")
	check("text2B", hm.text2B, "z")
	check("commonMid", hm.commonMid, "345678")
}

func TestFindHalfMatchNoMatch(t *testing.T) {
	a := buffer.New([]byte("1234567890"))
	b := buffer.New([]byte("abcdef"))

	if _, ok := findHalfMatch(a, b); ok {
		t.Fatalf("findHalfMatch(%q, %q) = a match, want none", a.String(), b.String())
	}
}
