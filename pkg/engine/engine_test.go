package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/madverse/madverse/pkg/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWords() story.WordMap {
	return story.WordMap{
		"noun":      "teapot",
		"noun2":     "pigeons",
		"verb":      "exploded",
		"verb2":     "humming",
		"adjective": "soggy",
		"name":      "Greg",
		"place":     "basement",
		"emotion":   "dread",
		"number":    "42",
		"object":    "spoon",
		"sound":     "kaboom",
		"body_part": "elbow",
	}
}

func mustGenre(t *testing.T, id string) story.Genre {
	t.Helper()
	g, ok := story.FindGenre(id)
	require.True(t, ok)
	return g
}

func countType(segs story.Segments, typ story.SegmentType) int {
	n := 0
	for _, s := range segs {
		if s.Type == typ {
			n++
		}
	}
	return n
}

func TestGenerateShape(t *testing.T) {
	genre := mustGenre(t, "horror")
	words := testWords()

	for seed := int64(0); seed < 50; seed++ {
		e := New(rand.New(rand.NewSource(seed)))
		segs := e.Generate(genre, words)

		require.NotEmpty(t, segs, "seed %d", seed)
		assert.Equal(t, story.SegmentOpening, segs[0].Type, "seed %d", seed)
		assert.Equal(t, story.SegmentAuthorComment, segs[len(segs)-1].Type, "seed %d", seed)
		assert.Equal(t, 1, countType(segs, story.SegmentOpening), "seed %d", seed)
		assert.Equal(t, 1, countType(segs, story.SegmentClosing), "seed %d", seed)
		assert.Equal(t, 1, countType(segs, story.SegmentAuthorComment), "seed %d", seed)

		middles := countType(segs, story.SegmentMiddle)
		assert.GreaterOrEqual(t, middles, 2, "seed %d", seed)
		assert.LessOrEqual(t, middles, 5, "seed %d", seed)

		for _, s := range segs {
			assert.NotEmpty(t, strings.TrimSpace(s.Text), "seed %d", seed)
			assert.NotContains(t, s.Text, "{", "seed %d", seed)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	genre := mustGenre(t, "scifi")
	words := testWords()

	a := New(rand.New(rand.NewSource(1234))).Generate(genre, words)
	b := New(rand.New(rand.NewSource(1234))).Generate(genre, words)

	require.Equal(t, a, b)
}

func TestGenerateVariesAcrossSeeds(t *testing.T) {
	genre := mustGenre(t, "fantasy")
	words := testWords()

	distinct := make(map[string]bool)
	for seed := int64(0); seed < 30; seed++ {
		segs := New(rand.New(rand.NewSource(seed))).Generate(genre, words)
		var sb strings.Builder
		for _, s := range segs {
			sb.WriteString(s.Text)
			sb.WriteByte('\n')
		}
		distinct[sb.String()] = true
	}

	assert.Greater(t, len(distinct), 1)
}

func TestGenerateEmphasisContainment(t *testing.T) {
	words := testWords()

	for _, genre := range story.Genres() {
		if len(genre.Middle) == 0 {
			continue
		}
		for seed := int64(0); seed < 20; seed++ {
			segs := New(rand.New(rand.NewSource(seed))).Generate(genre, words)
			for _, s := range segs {
				lower := strings.ToLower(s.Text)
				for _, w := range s.EmphasisWords {
					assert.Contains(t, lower, strings.ToLower(w),
						"genre %s seed %d text %q", genre.ID, seed, s.Text)
				}
			}
		}
	}
}

func TestGenerateNoCallbackWithoutSubstitutions(t *testing.T) {
	genre := story.Genre{
		ID:      "plain",
		Name:    "Plain",
		Opening: []string{"Once upon a time."},
		Middle:  []string{"One thing.", "Another thing.", "A third thing.", "More things.", "Final thing."},
		Closing: []string{"The end."},
	}

	for seed := int64(0); seed < 40; seed++ {
		segs := New(rand.New(rand.NewSource(seed))).Generate(genre, story.WordMap{})
		assert.Zero(t, countType(segs, story.SegmentCallback), "seed %d", seed)
	}
}

func TestGenerateCallbackRepeatsUsedValue(t *testing.T) {
	genre := story.Genre{
		ID:      "echo",
		Name:    "Echo",
		Opening: []string{"It began with a {noun}."},
		Middle:  []string{"The {noun} grew.", "The {noun} spoke.", "The {noun} left.", "The {noun} won."},
		Closing: []string{"So much for the {noun}."},
	}
	words := story.WordMap{"noun": "walrus"}

	sawCallback := false
	for seed := int64(0); seed < 60; seed++ {
		segs := New(rand.New(rand.NewSource(seed))).Generate(genre, words)
		for _, s := range segs {
			if s.Type != story.SegmentCallback {
				continue
			}
			sawCallback = true
			assert.Contains(t, strings.ToLower(s.Text), "walrus", "seed %d", seed)
		}
	}
	assert.True(t, sawCallback, "expected at least one callback across seeds")
}

func TestGenerateEmptyPoolsDegradeToComment(t *testing.T) {
	segs := New(rand.New(rand.NewSource(7))).Generate(story.Genre{ID: "bare"}, story.WordMap{})

	require.Len(t, segs, 1)
	assert.Equal(t, story.SegmentAuthorComment, segs[0].Type)
	assert.NotEmpty(t, segs[0].Text)
}

func TestGenerateSingleMiddleTemplate(t *testing.T) {
	genre := story.Genre{
		ID:      "tiny",
		Name:    "Tiny",
		Opening: []string{"Start."},
		Middle:  []string{"The only {noun} sentence."},
		Closing: []string{"Stop."},
	}

	segs := New(rand.New(rand.NewSource(3))).Generate(genre, story.WordMap{"noun": "bolt"})

	assert.Equal(t, 1, countType(segs, story.SegmentMiddle))
}

func TestGenerateTrimsEscalationFragments(t *testing.T) {
	genre := story.Genre{
		ID:      "loud",
		Name:    "Loud",
		Opening: []string{"Start."},
		Middle:  []string{"One {noun}.", "Two {noun}.", "Three {noun}.", "Four {noun}.", "Five {noun}."},
		Closing: []string{"Stop."},
		Escalation: []string{
			"\n  SUDDENLY {noun} \n",
			"\tMEANWHILE \t",
		},
	}

	sawEscalation := false
	for seed := int64(0); seed < 40; seed++ {
		segs := New(rand.New(rand.NewSource(seed))).Generate(genre, story.WordMap{"noun": "bolt"})
		for _, s := range segs {
			if s.Type != story.SegmentEscalation {
				continue
			}
			sawEscalation = true
			assert.Equal(t, strings.TrimSpace(s.Text), s.Text, "seed %d", seed)
		}
	}
	assert.True(t, sawEscalation, "expected at least one escalation across seeds")
}

func TestGenerateNilRandomSource(t *testing.T) {
	segs := New(nil).Generate(mustGenre(t, "romance"), testWords())
	require.NotEmpty(t, segs)
}
