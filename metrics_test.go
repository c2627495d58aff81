package bytepatch

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		d    Diff
		want int
	}{
		{Diff{Fragments: frags(OpEqual, "abc", OpDelete, "1234", OpInsert, "xy")}, 4},
		{Diff{Fragments: frags(OpDelete, "a", OpInsert, "b")}, 1},
		{Diff{Fragments: frags(OpEqual, "abc")}, 0},
		{Diff{}, 0},
	}
	for _, c := range cases {
		if got := c.d.Levenshtein(); got != c.want {
			t.Errorf("Levenshtein(%v) = %d, want %d", c.d.Fragments, got, c.want)
		}
	}
}

func TestMapIndexAcrossInsert(t *testing.T) {
	d := Diff{Fragments: frags(OpDelete, "a", OpInsert, "1234", OpEqual, "xyz")}
	if got := d.MapIndex(2); got != 5 {
		t.Errorf("MapIndex(2) = %d, want 5", got)
	}
}

func TestMapIndexClampsInsideDelete(t *testing.T) {
	d := Diff{Fragments: frags(OpEqual, "a", OpDelete, "1234", OpEqual, "xyz")}
	if got := d.MapIndex(3); got != 1 {
		t.Errorf("MapIndex(3) = %d, want 1", got)
	}
}
