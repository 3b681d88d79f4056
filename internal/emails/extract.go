package emails

import (
	"regexp"
	"strings"
)

// discoveryPattern finds candidate email addresses anywhere in free
// text. It is deliberately permissive so addresses embedded in
// surrounding punctuation are still caught; Validate re-checks each
// unique candidate against the anchored strict pattern.
var discoveryPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Discover returns every candidate match in document order,
// duplicates included. This is the raw discovery signal; callers that
// want one entry per address run the result through Dedupe.
func Discover(text string) []string {
	return discoveryPattern.FindAllString(text, -1)
}

// Dedupe collapses candidates that differ only in letter case,
// keeping the first-seen surface form with its original casing.
// Order of first appearance is preserved.
func Dedupe(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, email := range candidates {
		folded := strings.ToLower(email)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		unique = append(unique, email)
	}
	return unique
}
