package parser

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// NewUTF8Reader wraps r so that ill-formed UTF-8 byte sequences are
// dropped rather than aborting the read. The decoder substitutes
// U+FFFD for bad bytes and the chained transform removes them.
func NewUTF8Reader(r io.Reader) io.Reader {
	t := transform.Chain(
		unicode.UTF8.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
	return transform.NewReader(r, t)
}

// CleanUTF8 returns s with ill-formed byte sequences removed.
func CleanUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(transform.Chain(
		unicode.UTF8.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	), s)
	if err != nil {
		// The decoder never errors on bad input, it substitutes. Keep
		// the original string if the transform itself fails.
		return s
	}
	return out
}
