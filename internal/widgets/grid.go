package widgets

// Grid maps layout cells onto terminal columns and lines.
type Grid struct {
	Cols     int // layout columns
	Width    int // terminal columns available
	RowLines int // terminal lines per layout row
}

// ColWidth is the number of terminal columns one layout column gets.
func (g Grid) ColWidth() int {
	if g.Cols <= 0 {
		return 0
	}
	return max(g.Width/g.Cols, 1)
}

// Rect converts a cell rectangle into character coordinates.
func (g Grid) Rect(x, y, w, h int) (left, top, width, height int) {
	cw := g.ColWidth()
	rl := max(g.RowLines, 1)
	return x * cw, y * rl, w * cw, h * rl
}

// Cell returns the layout cell containing the character position (col, line).
func (g Grid) Cell(col, line int) (x, y int) {
	cw := g.ColWidth()
	if cw == 0 {
		return 0, 0
	}
	x = min(max(col/cw, 0), g.Cols-1)
	return x, max(line/max(g.RowLines, 1), 0)
}
