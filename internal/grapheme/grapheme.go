package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// FirstRunes returns the rune length of the first grapheme cluster in rs.
func FirstRunes(rs []rune) int {
	if len(rs) == 0 {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(rs), -1)
	n := utf8.RuneCountInString(cluster)
	if n == 0 {
		return 1
	}
	return n
}

// LastRunes returns the rune length of the last grapheme cluster in rs.
//
// Clusters are only well defined from a boundary, so the whole slice is
// segmented; callers pass a single line prefix.
func LastRunes(rs []rune) int {
	if len(rs) == 0 {
		return 0
	}
	rest := string(rs)
	state := -1
	last := 1
	var cluster string
	for rest != "" {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = utf8.RuneCountInString(cluster)
	}
	if last == 0 {
		return 1
	}
	return last
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
