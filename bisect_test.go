package bytepatch

import "testing"

// S1: Bisect("cat","map") with an unbounded deadline finds the minimal
// middle snake; with a zero deadline it degrades to a single
// DELETE/INSERT pair.
func TestBisectMiddleSnake(t *testing.T) {
	d := Build([]byte("cat"), []byte("map"), WithUnboundedDeadline(), WithHalfMatch(false))
	want := frags(
		OpDelete, "c",
		OpInsert, "m",
		OpEqual, "a",
		OpDelete, "t",
		OpInsert, "p",
	)
	if !fragsEqual(d.Fragments, want) {
		t.Fatalf("Build(cat, map) unbounded = %v, want %v", d.Fragments, want)
	}
}

func TestBisectDeadlineDegrades(t *testing.T) {
	d := Build([]byte("cat"), []byte("map"), WithDeadline(0), WithHalfMatch(false))
	want := frags(OpDelete, "cat", OpInsert, "map")
	if !fragsEqual(d.Fragments, want) {
		t.Fatalf("Build(cat, map) zero-deadline = %v, want %v", d.Fragments, want)
	}
}
