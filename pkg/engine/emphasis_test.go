package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateEmphasisCaseInsensitive(t *testing.T) {
	text := "The CAT sat on the cat."

	got := LocateEmphasis(text, []string{"cat"})

	// The shout match on CAT collapses into the same span as the word match.
	require.Equal(t, []Range{{Start: 4, End: 7}, {Start: 19, End: 22}}, got)
	assert.Equal(t, "CAT", text[got[0].Start:got[0].End])
	assert.Equal(t, "cat", text[got[1].Start:got[1].End])
}

func TestLocateEmphasisShoutTokens(t *testing.T) {
	text := "It went KABOOM and then OK, just BOOM."

	got := LocateEmphasis(text, nil)

	// Two-letter runs like OK stay quiet.
	require.Equal(t, []Range{{Start: 8, End: 14}, {Start: 33, End: 37}}, got)
	assert.Equal(t, "KABOOM", text[got[0].Start:got[0].End])
	assert.Equal(t, "BOOM", text[got[1].Start:got[1].End])
}

func TestLocateEmphasisMultipleWordsSorted(t *testing.T) {
	text := "a soggy teapot in a soggy box"

	got := LocateEmphasis(text, []string{"teapot", "soggy"})

	require.Equal(t, []Range{{Start: 2, End: 7}, {Start: 8, End: 14}, {Start: 20, End: 25}}, got)
}

func TestLocateEmphasisSkipsEmptyWordsAndMisses(t *testing.T) {
	assert.Empty(t, LocateEmphasis("nothing to see here", []string{"", "zeppelin"}))
	assert.Empty(t, LocateEmphasis("", []string{"cat"}))
}

func TestLocateEmphasisOverlappingWords(t *testing.T) {
	text := "catapult"

	got := LocateEmphasis(text, []string{"cat", "catapult"})

	require.Equal(t, []Range{{Start: 0, End: 3}, {Start: 0, End: 8}}, got)
}

func TestResolveOverlapsFirstWins(t *testing.T) {
	got := ResolveOverlaps([]Range{
		{Start: 0, End: 5},
		{Start: 3, End: 8},
		{Start: 5, End: 9},
	})

	assert.Equal(t, []Range{{Start: 0, End: 5}, {Start: 5, End: 9}}, got)
}

func TestResolveOverlapsNested(t *testing.T) {
	got := ResolveOverlaps([]Range{
		{Start: 0, End: 3},
		{Start: 0, End: 8},
		{Start: 4, End: 6},
	})

	assert.Equal(t, []Range{{Start: 0, End: 3}, {Start: 4, End: 6}}, got)
}

func TestResolveOverlapsEmpty(t *testing.T) {
	assert.Empty(t, ResolveOverlaps(nil))
}
