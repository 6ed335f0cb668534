package ai

import (
	"context"
	"testing"

	"github.com/madverse/madverse/pkg/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teilomillet/gollm"
	"github.com/teilomillet/gollm/llm"
)

// cannedClient returns a fixed response without any network round trip.
type cannedClient struct {
	response string
	err      error
}

func (c *cannedClient) Generate(context.Context, *gollm.Prompt, ...llm.GenerateOption) (string, error) {
	return c.response, c.err
}

func TestDegradedShape(t *testing.T) {
	segs := Degraded("connection refused")

	require.Len(t, segs, 4)
	assert.Equal(t, story.SegmentOpening, segs[0].Type)
	assert.Equal(t, story.SegmentMiddle, segs[1].Type)
	assert.Equal(t, story.SegmentClosing, segs[2].Type)
	assert.Equal(t, story.SegmentAuthorComment, segs[3].Type)

	assert.Contains(t, segs[1].Text, "connection refused")
	assert.Equal(t, []string{"sorry", "embarrassed"}, segs[2].EmphasisWords)
}

func TestDegradedBlankReason(t *testing.T) {
	segs := Degraded("   ")

	require.Len(t, segs, 4)
	assert.Contains(t, segs[1].Text, "unknown error")
}

func TestUnconfiguredAdapterDegrades(t *testing.T) {
	a := &AI{}

	segs, meta := a.Generate(context.Background(), story.WordMap{"noun": "teapot"}, "cursed")

	require.Len(t, segs, 4)
	assert.Equal(t, story.SegmentOpening, segs[0].Type)
	assert.Contains(t, segs[1].Text, "API key not configured")
	assert.Zero(t, meta)
}

func TestGenerateCarriesMetadata(t *testing.T) {
	a := &AI{client: &cannedClient{response: `{
		"story_parts": [{"text": "The teapot arrived.", "type": "opening"}],
		"ai_reflection": "I regret nothing.",
		"chaos_level": 9,
		"best_word": "teapot"
	}`}}

	segs, meta := a.Generate(context.Background(), story.WordMap{"noun": "teapot"}, "cursed")

	require.NotEmpty(t, segs)
	assert.Equal(t, "The teapot arrived.", segs[0].Text)
	assert.Equal(t, "I regret nothing.", meta.Reflection)
	assert.Equal(t, 9, meta.ChaosLevel)
	assert.Equal(t, "teapot", meta.BestWord)
}

func TestGenerateClientErrorDegrades(t *testing.T) {
	a := &AI{client: &cannedClient{err: context.DeadlineExceeded}}

	segs, meta := a.Generate(context.Background(), story.WordMap{"noun": "teapot"}, "cursed")

	require.Len(t, segs, 4)
	assert.Equal(t, story.SegmentClosing, segs[2].Type)
	assert.Zero(t, meta)
}

func TestGenerateAllBlankPartsDegrade(t *testing.T) {
	a := &AI{client: &cannedClient{response: `{
		"story_parts": [{"text": "   ", "type": "opening"}, {"text": "\n", "type": "middle"}],
		"ai_reflection": ""
	}`}}

	segs, meta := a.Generate(context.Background(), story.WordMap{"noun": "teapot"}, "cursed")

	// A response with nothing printable still yields the full fallback story.
	require.Len(t, segs, 4)
	assert.Equal(t, story.SegmentOpening, segs[0].Type)
	assert.Contains(t, segs[1].Text, "empty story")
	assert.Zero(t, meta)
}

func TestParseRemoteStory(t *testing.T) {
	raw := `{
		"story_parts": [
			{"text": "It began.", "type": "opening"},
			{"text": "The Teapot SCREAMED.", "type": "middle"}
		],
		"ai_reflection": "I regret nothing.",
		"chaos_level": 9,
		"best_word": "teapot"
	}`

	parsed, err := parseRemoteStory(raw)

	require.NoError(t, err)
	require.Len(t, parsed.StoryParts, 2)
	assert.Equal(t, "opening", parsed.StoryParts[0].Type)
	assert.Equal(t, "I regret nothing.", parsed.AIReflection)
	assert.Equal(t, 9, parsed.ChaosLevel)
	assert.Equal(t, "teapot", parsed.BestWord)
}

func TestParseRemoteStoryRejectsGarbage(t *testing.T) {
	_, err := parseRemoteStory("Sure! Here's your story: once upon a time")
	assert.Error(t, err)
}

func TestParseRemoteStoryRejectsEmptyParts(t *testing.T) {
	_, err := parseRemoteStory(`{"story_parts": [], "ai_reflection": "hm"}`)
	assert.Error(t, err)
}

func TestParseRemoteStoryRejectsAllBlankParts(t *testing.T) {
	_, err := parseRemoteStory(`{"story_parts": [{"text": "   ", "type": "opening"}, {"text": "\t\n", "type": "middle"}]}`)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	parsed := remoteStory{
		StoryParts: []remotePart{
			{Text: "The Teapot arrived.", Type: "opening"},
			{Text: "   ", Type: "middle"},
			{Text: "Something soggy happened.", Type: "interpretive_dance"},
		},
		AIReflection: "What a ride.",
	}
	words := story.WordMap{"noun": "teapot", "adjective": "soggy", "verb": ""}

	segs := normalize(parsed, words)

	require.Len(t, segs, 3)

	assert.Equal(t, story.SegmentOpening, segs[0].Type)
	assert.Equal(t, []string{"teapot"}, segs[0].EmphasisWords)

	// Unknown type lands in the middle; blank parts are dropped.
	assert.Equal(t, story.SegmentMiddle, segs[1].Type)
	assert.Equal(t, "Something soggy happened.", segs[1].Text)
	assert.Equal(t, []string{"soggy"}, segs[1].EmphasisWords)

	assert.Equal(t, story.SegmentAuthorComment, segs[2].Type)
	assert.Equal(t, "AI REFLECTION: What a ride.", segs[2].Text)
	assert.Empty(t, segs[2].EmphasisWords)
}

func TestWordListStableOrderSkipsBlanks(t *testing.T) {
	got := wordList(story.WordMap{"verb": "wept", "noun": "fog", "sound": "  "})

	assert.Equal(t, "  - noun: \"fog\"\n  - verb: \"wept\"", got)
}
