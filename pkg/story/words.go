package story

import (
	"math/rand"
	"strings"
)

// WordPrompt describes one word the user is asked for. Key doubles as the
// placeholder name inside templates.
type WordPrompt struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
}

// WordMap holds the user's answers keyed by prompt key. Created fresh per
// story request; treated as immutable once handed to an engine.
type WordMap map[string]string

// Get returns the trimmed value for key, or fallback when the entry is
// missing or blank.
func (w WordMap) Get(key, fallback string) string {
	if v, ok := w[key]; ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return fallback
}

// UniversalPrompts is the shared prompt set; every genre currently uses it.
var UniversalPrompts = []WordPrompt{
	{Key: "noun", Label: "A random noun", Placeholder: "e.g. spatula, fog, democracy", Type: "noun"},
	{Key: "noun2", Label: "Another noun", Placeholder: "e.g. lighthouse, regret, cheese", Type: "noun"},
	{Key: "verb", Label: "A verb (past tense)", Placeholder: "e.g. exploded, wept, malfunctioned", Type: "verb"},
	{Key: "verb2", Label: "Another verb (-ing)", Placeholder: "e.g. screaming, calculating, yearning", Type: "verb"},
	{Key: "adjective", Label: "An adjective", Placeholder: "e.g. soggy, ominous, unnecessarily tall", Type: "adj"},
	{Key: "adjective2", Label: "Another adjective", Placeholder: "e.g. lukewarm, catastrophic, beige", Type: "adj"},
	{Key: "name", Label: "A name (real or fake)", Placeholder: "e.g. Gerald, Zorp-9, Professor Mist", Type: "name"},
	{Key: "location", Label: "A location", Placeholder: "e.g. the basement, Neptune, IKEA", Type: "location"},
	{Key: "emotion", Label: "An emotion", Placeholder: "e.g. mild dread, existential joy", Type: "emotion"},
	{Key: "sound", Label: "A silly sound", Placeholder: "e.g. SPLONK, wubbadubba, krrshh", Type: "sound"},
	{Key: "object", Label: "A useless object", Placeholder: "e.g. a broken kazoo, novelty socks", Type: "object"},
	{Key: "number", Label: "A number", Placeholder: "e.g. 7, 400, 0.003", Type: "number"},
}

// wordBanks are the fallback words used when the user skips a prompt,
// keyed by prompt key.
var wordBanks = map[string][]string{
	"noun": {"spatula", "fog", "democracy", "lighthouse", "regret", "cheese",
		"bureaucracy", "suitcase", "ceiling fan", "obelisk", "algorithm",
		"tambourine", "sundial", "escalator", "brochure", "mayonnaise"},
	"noun2": {"prophecy", "noodle", "catastrophe", "silence", "invoice",
		"monument", "cabbage", "footnote", "diploma", "cobblestone"},
	"verb": {"exploded", "wept", "malfunctioned", "vanished", "surrendered",
		"combusted", "apologized", "wobbled", "sighed", "evaporated"},
	"verb2": {"screaming", "calculating", "yearning", "hovering", "wobbling",
		"optimizing", "sighing", "deteriorating", "spiraling", "flickering"},
	"adjective": {"soggy", "ominous", "lukewarm", "catastrophic", "beige",
		"unnecessarily tall", "vaguely damp", "statistically significant",
		"mildly haunted", "chronically late", "aggressively beige"},
	"adjective2": {"unsettling", "magnificent", "structurally questionable",
		"emotionally unavailable", "suspiciously normal", "conspicuously absent"},
	"name": {"Gerald", "Zorp-9", "Professor Mist", "Bartholomew",
		"Dr. Elsewhere", "UNIT-7", "Marigold", "The Narrator"},
	"location": {"the basement", "Neptune", "IKEA", "the void", "a parking garage",
		"the second floor", "medieval times", "a conference room",
		"the produce aisle", "somewhere unspecified"},
	"emotion": {"mild dread", "existential joy", "performative concern",
		"reluctant enthusiasm", "aggressive indifference", "suspicious hope"},
	"sound": {"SPLONK", "wubbadubba", "krrshh", "BONK", "squelch",
		"zorp", "FLOMPF", "vrrrm", "plink", "THWONK"},
	"object": {"broken kazoo", "novelty socks", "non-functional umbrella",
		"laminated ID card", "decorative gourd", "charging cable",
		"half a stapler", "unsolicited pamphlet"},
	"number": {"7", "400", "0.003", "17", "42", "9,000", "3.14", "1"},
}

// RandomWord picks a fallback word for the given prompt key. Unknown keys
// fall back to the noun bank.
func RandomWord(rng *rand.Rand, key string) string {
	bank, ok := wordBanks[key]
	if !ok {
		bank = wordBanks["noun"]
	}
	return bank[rng.Intn(len(bank))]
}

// FillMissing returns a copy of words where every prompt key has a
// non-blank value, drawing replacements from the word banks.
func FillMissing(rng *rand.Rand, prompts []WordPrompt, words WordMap) WordMap {
	filled := make(WordMap, len(prompts))
	for k, v := range words {
		filled[k] = strings.TrimSpace(v)
	}
	for _, p := range prompts {
		if filled[p.Key] == "" {
			filled[p.Key] = RandomWord(rng, p.Key)
		}
	}
	return filled
}

// MoodPresets are the suggested sub-genre labels for remote generation.
// Any free-form label is accepted as well.
var MoodPresets = []string{
	"chaotic absurdist",
	"overly dramatic",
	"fake academic",
	"corporate memo gone wrong",
	"motivational poster disaster",
	"nature documentary narrator",
	"conspiracy theorist",
	"exhausted robot",
	"enthusiastic toddler",
	"passive-aggressive office AI",
}
