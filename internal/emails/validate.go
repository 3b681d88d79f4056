package emails

import "regexp"

// strictPattern requires the entire token to be a well-formed address.
// It uses the same character classes as discovery but is anchored, so
// candidates the permissive pattern captured with stray boundary
// characters are reclassified as needing review instead of silently
// dropped.
var strictPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Partition is the outcome of strict validation: every input entry
// appears in exactly one of the two slices, relative order preserved.
type Partition struct {
	Valid   []string
	Invalid []string
}

// Total returns the number of entries across both subsequences.
func (p Partition) Total() int {
	return len(p.Valid) + len(p.Invalid)
}

// IsValid reports whether the entire string is a well-formed address.
func IsValid(email string) bool {
	return strictPattern.MatchString(email)
}

// Validate classifies each entry of a unique email list against the
// strict pattern, partitioning into valid and needs-review.
func Validate(emails []string) Partition {
	var p Partition
	for _, email := range emails {
		if IsValid(email) {
			p.Valid = append(p.Valid, email)
		} else {
			p.Invalid = append(p.Invalid, email)
		}
	}
	return p
}
