package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCanvasPlaceClipsAndCovers(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Place("aaaa\naaaa", 0, 0)
	c.Place("bb", 2, 1)
	c.Place("cccccc", 7, 2)
	c.Place("zz", -1, 0)

	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	want := []string{
		"zaaa      ",
		"aabb      ",
		"       ccc",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Place("xx", 4, 0)
	c.Place("xx", 0, 2)
	c.Place("xx\nyy\nzz", 0, -1)
	if got := c.String(); got != "yy  \nzz  " {
		t.Fatalf("canvas = %q", got)
	}
}

func TestGridRect(t *testing.T) {
	g := Grid{Cols: 12, Width: 120, RowLines: 1}
	left, top, width, height := g.Rect(10, 3, 2, 5)
	if left != 100 || top != 3 || width != 20 || height != 5 {
		t.Fatalf("rect = %d,%d %dx%d", left, top, width, height)
	}
	if x, y := g.Cell(119, 7); x != 11 || y != 7 {
		t.Fatalf("cell = %d,%d", x, y)
	}
	if w := (Grid{Cols: 12, Width: 5}).ColWidth(); w != 1 {
		t.Fatalf("narrow col width = %d, want 1", w)
	}
}

func TestPaneRendersTitleAndSize(t *testing.T) {
	out := Pane{Title: "Kapasitif Yük", Content: "0%", Palette: Latte}.Render(24, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("line %d width = %d, want 24", i, w)
		}
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Kapasitif Yük") || !strings.Contains(plain, "0%") {
		t.Fatalf("missing title or content:\n%s", plain)
	}

	collapsed := Pane{Title: "x", Content: "hidden", Collapsed: true}.Render(10, 5)
	if n := len(strings.Split(collapsed, "\n")); n != 2 {
		t.Fatalf("collapsed line count = %d, want 2", n)
	}
	if strings.Contains(ansi.Strip(collapsed), "hidden") {
		t.Fatalf("collapsed pane shows content")
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9, Mocha)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}
