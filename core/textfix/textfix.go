// Package textfix repairs garbled free-text values before they enter the
// curated tables. It deals with mojibake (text decoded with the wrong
// character encoding at some point upstream), unicode compatibility forms,
// and stray whitespace.
package textfix

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Fix runs the repair chain on a text value:
//
//  1. Build a repair candidate by re-encoding the string byte-per-rune
//     (latin-1 semantics, unmappable runes dropped) and decoding the bytes
//     as UTF-8 (invalid sequences dropped). The candidate replaces the
//     original only when it contains strictly more non-ASCII characters.
//     The improvement predicate is explicit so the decision stays
//     deterministic and testable.
//  2. Apply NFKC compatibility normalization.
//  3. Trim and collapse internal whitespace runs to single spaces.
//
// Fix never fails; the worst case is returning the trimmed original.
func Fix(s string) string {
	if s == "" {
		return ""
	}

	if candidate := latin1RoundTrip(s); nonASCIICount(candidate) > nonASCIICount(s) {
		s = candidate
	}

	s = norm.NFKC.String(s)
	s = strings.TrimSpace(s)
	return spaceRe.ReplaceAllString(s, " ")
}

// latin1RoundTrip encodes each rune as a single latin-1 byte (runes above
// 0xFF are dropped) and decodes the byte sequence back as UTF-8, skipping
// invalid sequences. This reverses the classic corruption where UTF-8 bytes
// were interpreted as latin-1.
func latin1RoundTrip(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			b = append(b, byte(r))
		}
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			b = b[1:]
			continue
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

func nonASCIICount(s string) int {
	n := 0
	for _, r := range s {
		if r > 127 {
			n++
		}
	}
	return n
}
