package service

import (
	"regexp"
	"sort"
)

// RE2's \w, \s and \d are ASCII-only. Citations in model output carry
// non-breaking spaces and non-ASCII letters, so the classes are spelled out
// with their Unicode meanings.
const (
	wordChars  = `\p{L}\p{N}_`
	spaceChars = `\t\n\v\f\r\x1c-\x1f\x85\p{Z}`
	digit      = `\p{Nd}`
)

var (
	// e.g. "Section 18 of the Fair Work Act 2009"
	legislationPattern = regexp.MustCompile(
		`(?:Section|Sec\.|s\.) ` + digit + `+[A-Za-z]* of the [` + wordChars + spaceChars + `]+Act ` + digit + `{4}`,
	)
	// e.g. "[2021] HCA 27"
	caseLawPattern = regexp.MustCompile(
		`\[` + digit + `{4}\] [A-Z]+[A-Za-z` + spaceChars + `]+` + digit + `+`,
	)
)

// ExtractReferences returns the distinct legislation and case-law citations found in text.
// Matching is lexical only and may both miss and over-match; treat the result as advisory.
// The result is a set: it never contains duplicates and is sorted only for stable display.
func ExtractReferences(text string) []string {
	seen := make(map[string]struct{})
	for _, pattern := range []*regexp.Regexp{legislationPattern, caseLawPattern} {
		for _, match := range pattern.FindAllString(text, -1) {
			seen[match] = struct{}{}
		}
	}

	references := make([]string, 0, len(seen))
	for ref := range seen {
		references = append(references, ref)
	}
	sort.Strings(references)
	return references
}
