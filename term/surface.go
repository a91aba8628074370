package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/scribe/editor"
)

type cell struct {
	text    string
	width   int
	fg, bg  lipgloss.Color
	reverse bool
	// covered marks the trailing cells of a wide glyph.
	covered bool
}

type cellStyle struct {
	fg, bg  lipgloss.Color
	reverse bool
}

// cellSurface keeps the last frame and rasterizes it on View.
type cellSurface struct {
	frame  editor.Frame
	frames int
}

func (s *cellSurface) Draw(f editor.Frame) {
	s.frame = f
	s.frames++
}

// render rasterizes the last frame into rows lines of cols cells.
func (s *cellSurface) render(r *lipgloss.Renderer, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
	}
	f := s.frame

	for _, sel := range f.Selection {
		y := cellIndex(sel.Y)
		if y < 0 || y >= rows {
			continue
		}
		for x := max(0, cellIndex(sel.X)); x < min(cols, cellIndex(sel.X+sel.W)); x++ {
			grid[y][x].bg = f.SelectionColor
		}
	}

	for _, g := range f.Glyphs {
		y, x := cellIndex(g.Position.Y), cellIndex(g.Position.X)
		if y < 0 || y >= rows || x < 0 || x > cols {
			continue
		}
		row := grid[y]
		w := cellIndex(g.Width)
		if w == 0 {
			// Combining marks join the glyph to their left.
			if base := owner(row, x-1); base >= 0 && row[base].text != "" {
				row[base].text += string(g.Rune)
			}
			continue
		}
		// A cell cannot hold part of a glyph; one crossing the right edge
		// would wrap the terminal line.
		if x+w > cols {
			continue
		}
		row[x].text = string(g.Rune)
		row[x].width = w
		row[x].fg = g.Color
		for k := 1; k < w && x+k < cols; k++ {
			row[x+k].covered = true
		}
	}

	if f.CaretVisible {
		y, x := cellIndex(f.Caret.Y), cellIndex(f.Caret.X)
		if y >= 0 && y < rows && x >= 0 && x < cols {
			if c := owner(grid[y], x); c >= 0 {
				grid[y][c].reverse = true
			}
		}
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = renderRow(r, row)
	}
	return strings.Join(lines, "\n")
}

// owner returns the index of the cell that draws column x.
func owner(row []cell, x int) int {
	for ; x >= 0; x-- {
		if !row[x].covered {
			return x
		}
	}
	return -1
}

func renderRow(r *lipgloss.Renderer, row []cell) string {
	var out, run strings.Builder
	var cur cellStyle
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(styleFor(r, cur).Render(run.String()))
		run.Reset()
	}

	for _, c := range row {
		if c.covered {
			continue
		}
		st := cellStyle{fg: c.fg, bg: c.bg, reverse: c.reverse}
		if st != cur {
			flush()
			cur = st
		}
		text := c.text
		if text == "" {
			text = " "
		}
		run.WriteString(text)
		// Pad when the terminal draws the glyph narrower than the layout.
		if pad := max(c.width, 1) - runewidth.StringWidth(text); pad > 0 {
			run.WriteString(strings.Repeat(" ", pad))
		}
	}
	flush()
	return out.String()
}

func styleFor(r *lipgloss.Renderer, st cellStyle) lipgloss.Style {
	s := r.NewStyle()
	if st.fg != "" {
		s = s.Foreground(st.fg)
	}
	if st.bg != "" {
		s = s.Background(st.bg)
	}
	if st.reverse {
		s = s.Reverse(true)
	}
	return s
}

func cellIndex(v float64) int {
	return int(math.Floor(v + 0.5))
}
