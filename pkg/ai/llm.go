// Package ai generates stories through a remote language model. Every
// outcome, including misconfiguration and malformed responses, normalizes
// into the same segment sequence the local engine produces, so the caller
// never needs an error-rendering path.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/madverse/madverse/pkg/story"
	"github.com/spf13/viper"
	"github.com/teilomillet/gollm"
	"github.com/teilomillet/gollm/llm"
)

const systemInstruction = `You are MadVerse AI, a chaotic, self-aware story narrator who generates hilariously absurd Mad Libs stories.

You will receive a set of user-provided words and a chosen sub-genre/mood. Your job is to:
1. Generate a short mad-libs style story (5-8 sentences) using ALL the provided words, weaving them in naturally but in unexpected, funny, or wrong grammatical contexts.
2. Add an "AI twist": at least one moment where you break the fourth wall and comment on how chaotic the story is becoming.
3. End with a "narrator commentary": 1 sentence where you, as the AI, reflect on what just happened.

RULES:
- Use every single provided word at least once
- Use some words in the wrong grammatical form on purpose (for comedy)
- Randomly capitalize IMPORTANT words for dramatic effect
- Add parenthetical side-comments from the narrator mid-story
- The story should escalate from mildly chaotic to completely unhinged
- The final narrator commentary should sound like a confused but proud AI

OUTPUT FORMAT (JSON only, no markdown):
{
  "story_parts": [
    {"text": "...", "type": "opening"},
    {"text": "...", "type": "middle"},
    {"text": "...", "type": "fourth_wall"},
    {"text": "...", "type": "escalation"},
    {"text": "...", "type": "closing"},
    {"text": "...", "type": "author_comment"}
  ],
  "ai_reflection": "One sentence from the AI about what just happened",
  "chaos_level": 1-10,
  "best_word": "the word you enjoyed using most"
}

Types available: opening, middle, closing, fourth_wall, escalation, callback, author_comment`

// RemoteResult carries the narrator metadata that rides along with a
// successful remote story. ChaosLevel is advisory and not validated.
type RemoteResult struct {
	Reflection string
	ChaosLevel int
	BestWord   string
}

type remoteStory struct {
	StoryParts   []remotePart `json:"story_parts"`
	AIReflection string       `json:"ai_reflection"`
	ChaosLevel   int          `json:"chaos_level"`
	BestWord     string       `json:"best_word"`
}

type remotePart struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// textGenerator is the slice of gollm.LLM the adapter calls. Tests swap in
// a canned implementation.
type textGenerator interface {
	Generate(ctx context.Context, prompt *gollm.Prompt, opts ...llm.GenerateOption) (string, error)
}

// AI is the remote story adapter. A zero AI (no client) is valid and always
// produces the degraded story. The adapter keeps no per-request state, so
// one instance may serve concurrent generations.
type AI struct {
	client textGenerator
}

// New builds the adapter from viper configuration. Missing provider or key
// is a normal condition, not an error: the returned adapter degrades instead
// of calling out.
func New() (*AI, error) {
	provider := viper.GetString("MADVERSE_PROVIDER")
	if provider == "" {
		return &AI{}, nil
	}

	keys := []string{
		"ANTHROPIC_API_KEY",
		"OPENAI_API_KEY",
	}
	apiKey := ""
	for _, key := range keys {
		if !strings.Contains(strings.ToLower(key), strings.ToLower(provider)) {
			continue
		}
		apiKey = viper.GetString(key)
		if apiKey != "" {
			log.Printf("Using key %s\n", key)
			break
		}
	}
	if apiKey == "" {
		return &AI{}, nil
	}

	conn, err := gollm.NewLLM(
		gollm.SetProvider(provider),
		gollm.SetModel(viper.GetString("MADVERSE_MODEL")),
		gollm.SetAPIKey(apiKey),
		gollm.SetMaxRetries(1),
		gollm.SetRetryDelay(time.Second),
		gollm.SetLogLevel(gollm.LogLevelWarn),
		gollm.SetMaxTokens(1200),
	)
	if err != nil {
		return nil, fmt.Errorf("create LLM client: %w", err)
	}

	return &AI{client: conn}, nil
}

// Configured reports whether a remote endpoint and credential are wired up.
func (a *AI) Configured() bool {
	return a != nil && a.client != nil
}

// Generate performs exactly one request/response exchange and always returns
// a complete story. Transport failures, timeouts and malformed responses
// fold into the degraded story rather than propagating; the narrator
// metadata rides along with the segments and is zero on any failure.
func (a *AI) Generate(ctx context.Context, words story.WordMap, mood string) (story.Segments, RemoteResult) {
	if !a.Configured() {
		return Degraded("API key not configured. Check app.env."), RemoteResult{}
	}

	templatePrompt := gollm.NewPromptTemplate(
		"MadVerseNarrator",
		"Generate a chaotic mad-libs story from user-provided words.",
		"Sub-genre/mood: {{.Mood}}\n\nUser-provided words:\n{{.Words}}\n\nGenerate the story now.",
		gollm.WithPromptOptions(
			gollm.WithContext(systemInstruction),
			gollm.WithOutput("A single JSON object with story_parts, ai_reflection, chaos_level and best_word. No markdown, no other text."),
		),
	)

	prompt, err := templatePrompt.Execute(map[string]interface{}{
		"Mood":  mood,
		"Words": wordList(words),
	})
	if err != nil {
		return Degraded(fmt.Sprintf("build prompt: %v", err)), RemoteResult{}
	}

	resp, err := a.client.Generate(ctx, prompt, gollm.WithJSONSchemaValidation())
	if err != nil {
		return Degraded(err.Error()), RemoteResult{}
	}

	parsed, err := parseRemoteStory(gollm.CleanResponse(resp))
	if err != nil {
		return Degraded(err.Error()), RemoteResult{}
	}

	meta := RemoteResult{
		Reflection: strings.TrimSpace(parsed.AIReflection),
		ChaosLevel: parsed.ChaosLevel,
		BestWord:   parsed.BestWord,
	}
	return normalize(parsed, words), meta
}

// wordList renders the non-empty word entries for the user message, in a
// stable key order.
func wordList(words story.WordMap) string {
	keys := make([]string, 0, len(words))
	for k, v := range words {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  - %s: %q", k, words[k]))
	}
	return strings.Join(lines, "\n")
}

// parseRemoteStory decodes the model's JSON body. A part list that is empty,
// or that holds nothing but whitespace texts, counts as a malformed response
// so the caller degrades instead of rendering an empty story.
func parseRemoteStory(raw string) (remoteStory, error) {
	var parsed remoteStory
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return remoteStory{}, fmt.Errorf("failed to parse AI response: %w", err)
	}
	for _, p := range parsed.StoryParts {
		if strings.TrimSpace(p.Text) != "" {
			return parsed, nil
		}
	}
	return remoteStory{}, fmt.Errorf("AI returned empty story")
}

// normalize maps the remote parts onto the local segment contract. Every
// non-empty word value is an emphasis candidate here, unlike the local
// engine's four fixed keys. A non-empty reflection becomes one extra
// author comment.
func normalize(parsed remoteStory, words story.WordMap) story.Segments {
	values := emphasisCandidates(words)

	segs := make(story.Segments, 0, len(parsed.StoryParts)+1)
	for _, p := range parsed.StoryParts {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		t := story.SegmentType(p.Type)
		if !story.ValidSegmentType(t) {
			t = story.SegmentMiddle
		}

		emphasis := []string{}
		lower := strings.ToLower(text)
		for _, v := range values {
			if strings.Contains(lower, strings.ToLower(v)) {
				emphasis = append(emphasis, v)
			}
		}
		segs = append(segs, story.Segment{Text: text, Type: t, EmphasisWords: emphasis})
	}

	if r := strings.TrimSpace(parsed.AIReflection); r != "" {
		segs = append(segs, story.Segment{
			Text:          "AI REFLECTION: " + r,
			Type:          story.SegmentAuthorComment,
			EmphasisWords: []string{},
		})
	}
	return segs
}

func emphasisCandidates(words story.WordMap) []string {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		v := strings.TrimSpace(words[k])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Degraded is the fixed four-segment fallback story. It is a fully valid,
// terminal result; the failure is narrated in-universe instead of raised.
func Degraded(reason string) story.Segments {
	if strings.TrimSpace(reason) == "" {
		reason = "unknown error"
	}
	return story.Segments{
		{
			Text:          "The AI attempted to generate your story...",
			Type:          story.SegmentOpening,
			EmphasisWords: []string{},
		},
		{
			Text:          fmt.Sprintf("...but encountered an error: %s", reason),
			Type:          story.SegmentMiddle,
			EmphasisWords: []string{},
		},
		{
			Text:          "The AI is deeply sorry and slightly embarrassed about this.",
			Type:          story.SegmentClosing,
			EmphasisWords: []string{"sorry", "embarrassed"},
		},
		{
			Text:          "AI NOTE: I tried. I really did. The API had other plans.",
			Type:          story.SegmentAuthorComment,
			EmphasisWords: []string{},
		},
	}
}
