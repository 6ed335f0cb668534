package engine

import (
	"sort"
	"strings"
)

// Range is a half-open [Start, End) byte span inside a segment's text.
type Range struct {
	Start int
	End   int
}

// LocateEmphasis finds every case-insensitive occurrence of the candidate
// words plus every word-boundary run of three or more upper-case letters.
// The result is sorted by start offset with exact duplicates collapsed;
// overlapping-but-different ranges are kept (see ResolveOverlaps).
func LocateEmphasis(text string, words []string) []Range {
	var ranges []Range
	lower := strings.ToLower(text)
	aligned := len(lower) == len(text)

	for _, w := range words {
		if w == "" {
			continue
		}
		needle := strings.ToLower(w)
		haystack := lower
		if !aligned || len(needle) != len(w) {
			// Byte offsets would drift after case folding; match exact case.
			needle = w
			haystack = text
		}
		for from := 0; ; {
			i := strings.Index(haystack[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			ranges = append(ranges, Range{Start: start, End: start + len(needle)})
			from = start + len(needle)
		}
	}

	for _, loc := range shoutRe.FindAllStringIndex(text, -1) {
		ranges = append(ranges, Range{Start: loc[0], End: loc[1]})
	}

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})

	deduped := ranges[:0]
	var prev Range
	for i, rg := range ranges {
		if i > 0 && rg == prev {
			continue
		}
		deduped = append(deduped, rg)
		prev = rg
	}
	return deduped
}

// ResolveOverlaps applies the first-by-start-offset-wins policy: a range
// starting before the previously accepted range has ended is dropped.
func ResolveOverlaps(ranges []Range) []Range {
	resolved := make([]Range, 0, len(ranges))
	end := 0
	for _, rg := range ranges {
		if rg.Start < end {
			continue
		}
		resolved = append(resolved, rg)
		end = rg.End
	}
	return resolved
}
