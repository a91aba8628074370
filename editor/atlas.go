package editor

// GlyphAtlas maps runes to glyph indices in the host's glyph cache.
type GlyphAtlas interface {
	Index(r rune) int
}

// RuneAtlas assigns indices in first-use order.
type RuneAtlas struct {
	index map[rune]int
	runes []rune
}

func NewRuneAtlas() *RuneAtlas {
	return &RuneAtlas{index: make(map[rune]int)}
}

func (a *RuneAtlas) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	i := len(a.runes)
	a.index[r] = i
	a.runes = append(a.runes, r)
	return i
}

// Rune returns the rune registered at index i.
func (a *RuneAtlas) Rune(i int) (rune, bool) {
	if i < 0 || i >= len(a.runes) {
		return 0, false
	}
	return a.runes[i], true
}

func (a *RuneAtlas) Len() int { return len(a.runes) }
