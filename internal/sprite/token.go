package sprite

import (
	"strconv"
	"strings"
)

// Token is one underscore-delimited filename segment split into its
// lowercase letter prefix and trailing digit run.
type Token struct {
	Letters string
	Digits  string
}

// SplitToken splits a filename segment into a lowercase letter prefix
// and a trailing digit run ("damage2" → "damage", "2").
func SplitToken(segment string) Token {
	letters, digits := splitTrailingDigits(segment)
	return Token{Letters: strings.ToLower(letters), Digits: digits}
}

// Base is the parsed first segment of a frame filename.
type Base struct {
	// Key is the matched base-type key, or the full lowercase letter
	// prefix when no key matches.
	Key string
	// Remainder holds letters left after the matched key (a sub-type
	// suffix such as the glyph in "numeralX").
	Remainder string
	// Variant is the raw trailing digit run of the segment.
	Variant string
}

// ParseBase parses the base segment of a frame filename. The trailing
// digit run becomes the variant; the remaining lowercase letters are
// matched longest-first against the known base-type keys. Unrecognised
// segments fall back to the full letter prefix as the key.
func ParseBase(segment string) Base {
	letters, variant := splitTrailingDigits(segment)
	letters = strings.ToLower(letters)

	for _, key := range baseKeysByLength {
		if strings.HasPrefix(letters, key) {
			return Base{Key: key, Remainder: letters[len(key):], Variant: variant}
		}
	}
	return Base{Key: letters, Variant: variant}
}

// NormalizeVariant canonicalises a variant string: an integer variant
// is reduced to its decimal form ("007" → "7"), anything else is
// upper-cased, and an empty variant stays empty.
func NormalizeVariant(raw string) string {
	if raw == "" {
		return ""
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return strconv.Itoa(n)
	}
	return strings.ToUpper(raw)
}

// splitTrailingDigits splits a segment into its prefix and trailing
// digit run.
func splitTrailingDigits(segment string) (prefix, digits string) {
	i := len(segment)
	for i > 0 && segment[i-1] >= '0' && segment[i-1] <= '9' {
		i--
	}
	return segment[:i], segment[i:]
}
