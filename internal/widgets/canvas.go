package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed-size text surface that rendered blocks are pasted onto
// at character coordinates. Later blocks cover earlier ones.
type Canvas struct {
	width  int
	height int
	lines  []string
}

func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return &Canvas{width: width, height: height, lines: lines}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Place pastes block with its top-left corner at column x, line y. Parts
// outside the canvas are clipped.
func (c *Canvas) Place(block string, x, y int) {
	if x >= c.width || y >= c.height {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= c.height {
			break
		}
		if x < 0 {
			line = dropColumns(line, -x)
		}
		c.lines[row] = spliceAt(c.lines[row], line, max(x, 0), c.width)
	}
}

func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// spliceAt replaces the columns of target covered by line, starting at x.
func spliceAt(target, line string, x, width int) string {
	target = padRightANSI(target, width)
	line = ansi.Truncate(line, width-x, "")
	left := ansi.Truncate(target, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	pos := x + ansi.StringWidth(line)
	right := dropColumns(target, pos)
	if gap := width - pos - ansi.StringWidth(right); gap > 0 {
		right = strings.Repeat(" ", gap) + right
	}
	return left + line + right
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
