// Package term hosts the pixel editor core inside a Bubble Tea program.
//
// One logical pixel is one terminal cell: narrow glyphs advance 1, wide
// glyphs 2, and every line is 1 tall. Frames are rasterized into a cell grid
// and rendered with lipgloss; pending composition text is drawn as an
// overlay at the caret.
package term
