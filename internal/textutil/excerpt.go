package textutil

import (
	"strings"
	"unicode/utf8"
)

// Excerpt collapses whitespace in s and shortens it to at most maxRunes runes,
// cutting at a word boundary where possible and appending an ellipsis.
func Excerpt(s string, maxRunes int) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(collapsed) <= maxRunes {
		return collapsed
	}
	if maxRunes == 1 {
		return "…"
	}
	runes := []rune(collapsed)
	cut := string(runes[:maxRunes-1])
	if idx := strings.LastIndexByte(cut, ' '); idx > len(cut)/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
