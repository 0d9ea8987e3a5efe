// Package normalize folds text before it is indexed, mirroring the
// reference tool's normalization step: Unicode NFC normalization, case
// folding, and stripping of non-alphanumeric runes. It lives outside the
// gst package so the tree itself stays content-agnostic about what bytes it
// indexes.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and removes every rune that is not a letter or digit,
// after normalizing it to NFC so that accented characters expressed as a
// base rune plus combining marks fold the same way as their precomposed
// form.
func Fold(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
