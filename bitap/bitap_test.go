package bitap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_ExactMatch(t *testing.T) {
	m := New(DefaultConfig())

	loc, ok := m.Execute([]byte("the quick brown fox"), []byte("quick"), 0)
	assert.True(t, ok)
	assert.Equal(t, 4, loc)
}

func TestMatcher_FuzzyMatch(t *testing.T) {
	m := New(DefaultConfig())

	// One byte off from "quick" ("quack"); should still match near where
	// "quick" would be, within threshold.
	loc, ok := m.Execute([]byte("the quack brown fox"), []byte("quick"), 4)
	assert.True(t, ok)
	assert.Equal(t, 4, loc)
}

func TestMatcher_NoMatch(t *testing.T) {
	m := New(Config{Distance: 1000, Threshold: 0.1})

	_, ok := m.Execute([]byte("completely unrelated text"), []byte("zzzzz"), 0)
	assert.False(t, ok)
}

func TestMatcher_EmptyPattern(t *testing.T) {
	m := New(DefaultConfig())

	loc, ok := m.Execute([]byte("abcdef"), nil, 3)
	assert.True(t, ok)
	assert.Equal(t, 3, loc)
}

func TestMatcher_DistanceAffectsScore(t *testing.T) {
	// With distance 0, only exact-location matches are acceptable.
	m := New(Config{Distance: 0, Threshold: 0.0})

	_, ok := m.Execute([]byte("xxxxxtargetxxxxx"), []byte("target"), 0)
	assert.False(t, ok)

	loc, ok := m.Execute([]byte("xxxxxtargetxxxxx"), []byte("target"), 5)
	assert.True(t, ok)
	assert.Equal(t, 5, loc)
}
