// Package engine assembles randomized stories from genre template banks and
// user words. It is pure computation with no I/O and no error paths; missing
// template pools degrade to missing segments, never to failures.
package engine

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/madverse/madverse/pkg/story"
)

const (
	escalationChance = 0.35
	fourthWallChance = 0.25
	capitalizeChance = 0.30
	middleMin        = 2
	middleMax        = 5
)

var shoutRe = regexp.MustCompile(`\b[A-Z]{3,}\b`)

// Engine is the local story assembler. The random source is injected so
// generation is reproducible under a seeded source.
type Engine struct {
	rng *rand.Rand
}

// New returns an engine over the given random source. A nil rng gets a
// time-seeded one.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Generate assembles an ordered story for the genre. Calls with independent
// random sources are safe to run concurrently; the used-values log and word
// map are scoped to this one call.
func (e *Engine) Generate(genre story.Genre, words story.WordMap) story.Segments {
	r := &run{
		rng:    e.rng,
		words:  words,
		filler: NewFiller(words),
		parts:  story.Segments{},
	}

	r.add(r.pickAndFill(genre.Opening), story.SegmentOpening)

	pool := append([]string(nil), genre.Middle...)
	r.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	selected := pool[:r.middleCount(len(pool))]

	for i, tmpl := range selected {
		if i > 0 && r.rng.Float64() < escalationChance && len(genre.Escalation) > 0 {
			esc := genre.Escalation[r.rng.Intn(len(genre.Escalation))]
			r.add(strings.TrimSpace(r.filler.Fill(esc)), story.SegmentEscalation)
		}

		filled := r.filler.Fill(tmpl)
		filled = r.dramaticCapitalize(filled)
		r.add(filled, story.SegmentMiddle)

		// Callback lands right after the second-to-last middle sentence,
		// once at least one word has actually been substituted.
		if i == len(selected)-2 && len(r.filler.Used()) > 0 {
			r.add(r.buildCallback(), story.SegmentCallback)
		}

		if r.rng.Float64() < fourthWallChance && len(genre.FourthWall) > 0 {
			fw := genre.FourthWall[r.rng.Intn(len(genre.FourthWall))]
			r.add(r.filler.Fill(fw), story.SegmentFourthWall)
		}
	}

	r.add(r.pickAndFill(genre.Closing), story.SegmentClosing)
	r.add(r.authorComment(), story.SegmentAuthorComment)

	return r.parts
}

// run carries the state of a single Generate call.
type run struct {
	rng    *rand.Rand
	words  story.WordMap
	filler *Filler
	parts  story.Segments
}

func (r *run) middleCount(poolSize int) int {
	max := poolSize
	if max > middleMax {
		max = middleMax
	}
	if max < middleMin {
		return max
	}
	return middleMin + r.rng.Intn(max-middleMin+1)
}

func (r *run) pickAndFill(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return r.filler.Fill(pool[r.rng.Intn(len(pool))])
}

// dramaticCapitalize upper-cases the first occurrence of the user's noun,
// 30% of the time, as a presentation flourish.
func (r *run) dramaticCapitalize(text string) string {
	noun := strings.TrimSpace(r.words["noun"])
	if noun == "" {
		return text
	}
	if r.rng.Float64() >= capitalizeChance {
		return text
	}
	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		// Lowercasing shifted byte offsets; skip the flourish.
		return text
	}
	idx := strings.Index(lower, strings.ToLower(noun))
	if idx < 0 {
		return text
	}
	end := idx + len(noun)
	return text[:idx] + strings.ToUpper(text[idx:end]) + text[end:]
}

func (r *run) buildCallback() string {
	used := r.filler.Used()
	if len(used) == 0 {
		return ""
	}
	word := used[r.rng.Intn(len(used))]
	phrasings := []string{
		fmt.Sprintf("(Yes, that %s again. It keeps coming up. Nobody knows why.)", word),
		fmt.Sprintf("The %s. Always the %s. We should have seen this coming.", word, word),
		fmt.Sprintf("Historians would later identify the %s as the turning point. Historians were baffled.", word),
		fmt.Sprintf("It bears repeating: the %s was there before any of this started.", word),
		fmt.Sprintf("The %s had been quietly %s this entire time.", word, r.words.Get("verb2", "waiting")),
	}
	return phrasings[r.rng.Intn(len(phrasings))]
}

func (r *run) authorComment() string {
	remarks := []string{
		fmt.Sprintf("The %s could not be reached for comment.", r.words.Get("noun", "noun")),
		fmt.Sprintf("This story was %s and we stand by it.", r.words.Get("adjective", "adjective")),
		fmt.Sprintf("No %s were harmed in the making of this narrative.", r.words.Get("noun2", "nouns")),
		fmt.Sprintf("Statistics show that %s%% of readers survived this story.", r.words.Get("number", "0")),
		fmt.Sprintf("The author's feelings about the %s remain unresolved.", r.words.Get("object", "object")),
	}
	return remarks[r.rng.Intn(len(remarks))]
}

// add finalizes a segment: blank texts are dropped, everything else gets its
// emphasis-word set derived from the final text.
func (r *run) add(text string, t story.SegmentType) {
	if strings.TrimSpace(text) == "" {
		return
	}
	r.parts = append(r.parts, story.Segment{
		Text:          text,
		Type:          t,
		EmphasisWords: r.emphasisWords(text),
	})
}

// emphasisWords collects the user's noun, adjective, name and emotion values
// present in the text, plus any all-caps shout token.
func (r *run) emphasisWords(text string) []string {
	emphasis := []string{}
	seen := make(map[string]bool)
	lower := strings.ToLower(text)

	for _, key := range []string{"noun", "adjective", "name", "emotion"} {
		val := strings.TrimSpace(r.words[key])
		if val == "" || seen[val] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(val)) {
			seen[val] = true
			emphasis = append(emphasis, val)
		}
	}

	for _, m := range shoutRe.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			emphasis = append(emphasis, m)
		}
	}
	return emphasis
}
