package story

import (
	"fmt"
	"strings"

	"github.com/madverse/madverse/pkg/utils"
)

// SegmentType tags one finished unit of story output.
type SegmentType string

const (
	SegmentOpening       SegmentType = "opening"
	SegmentMiddle        SegmentType = "middle"
	SegmentClosing       SegmentType = "closing"
	SegmentEscalation    SegmentType = "escalation"
	SegmentFourthWall    SegmentType = "fourth_wall"
	SegmentCallback      SegmentType = "callback"
	SegmentAuthorComment SegmentType = "author_comment"
)

// ValidSegmentType reports whether t is one of the known segment types.
func ValidSegmentType(t SegmentType) bool {
	switch t {
	case SegmentOpening, SegmentMiddle, SegmentClosing, SegmentEscalation,
		SegmentFourthWall, SegmentCallback, SegmentAuthorComment:
		return true
	}
	return false
}

// Segment is one typed, finished unit of story output. EmphasisWords is
// always present (possibly empty) and every entry occurs case-insensitively
// inside Text.
type Segment struct {
	Text          string      `json:"text"`
	Type          SegmentType `json:"type"`
	EmphasisWords []string    `json:"emphasis_words"`
}

// Segments is an ordered story; order reflects narrative progression and
// interjection placement.
type Segments []Segment

func (s *Segments) ToJson() string {
	return utils.ToJsonStr(s)
}
func (s *Segment) ToJson() string {
	return utils.ToJsonStr(s)
}

var exportPrefixes = map[SegmentType]string{
	SegmentFourthWall:    "  [aside] ",
	SegmentAuthorComment: "  — ",
	SegmentEscalation:    "  *** ",
	SegmentCallback:      "  (note) ",
}

// ExportText renders the story into the plain-text save/clipboard format:
// a banner, one prefixed line per segment, and a trailing listing of every
// collected word in prompt order.
func (s Segments) ExportText(genreName string, prompts []WordPrompt, words WordMap) string {
	rule := strings.Repeat("═", 60)

	lines := []string{
		rule,
		fmt.Sprintf("  MadVerse Story  ·  Genre: %s", genreName),
		rule,
		"",
	}
	for _, seg := range s {
		prefix, ok := exportPrefixes[seg.Type]
		if !ok {
			prefix = "  "
		}
		lines = append(lines, prefix+seg.Text, "")
	}
	lines = append(lines, rule, "  Words used:")
	for _, p := range prompts {
		if v, ok := words[p.Key]; ok {
			lines = append(lines, fmt.Sprintf("    %s: %s", p.Key, v))
		}
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}
