package engine

import (
	"regexp"
	"strings"

	"github.com/madverse/madverse/pkg/story"
)

// FillerToken replaces placeholders that no word covers. Raw {key} syntax
// must never reach the reader.
const FillerToken = "___"

var placeholderRe = regexp.MustCompile(`\{[^}]+\}`)

// Filler substitutes {key} placeholders with user words and keeps the
// used-values log for callback synthesis. One Filler spans one generation
// run; it is not safe for concurrent use.
type Filler struct {
	words story.WordMap
	used  []string
	seen  map[string]bool
}

func NewFiller(words story.WordMap) *Filler {
	return &Filler{
		words: words,
		seen:  make(map[string]bool),
	}
}

// Fill is total: any template and any word map produce a string free of
// placeholder syntax. Known keys are replaced case-preserved, unknown or
// blank ones collapse to the filler token.
func (f *Filler) Fill(template string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		key := m[1 : len(m)-1]
		value, ok := f.words[key]
		if !ok || strings.TrimSpace(value) == "" {
			return FillerToken
		}
		if !f.seen[value] {
			f.seen[value] = true
			f.used = append(f.used, value)
		}
		return value
	})
}

// Used returns the distinct substituted values in insertion order.
func (f *Filler) Used() []string {
	return f.used
}
