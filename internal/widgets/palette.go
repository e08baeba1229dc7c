package widgets

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a render pass draws with.
type Palette struct {
	Name string

	Text     lipgloss.Color
	Subtle   lipgloss.Color
	Border   lipgloss.Color
	Selected lipgloss.Color
	Focused  lipgloss.Color
	Base     lipgloss.Color

	Blue   lipgloss.Color
	Green  lipgloss.Color
	Peach  lipgloss.Color
	Mauve  lipgloss.Color
	Teal   lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
}

// Catppuccin flavors, https://catppuccin.com/palette
var (
	Mocha = Palette{
		Name:     "mocha",
		Text:     "#cdd6f4",
		Subtle:   "#a6adc8",
		Border:   "#6c7086",
		Selected: "#89b4fa",
		Focused:  "#a6e3a1",
		Base:     "#1e1e2e",
		Blue:     "#89b4fa",
		Green:    "#a6e3a1",
		Peach:    "#fab387",
		Mauve:    "#cba6f7",
		Teal:     "#94e2d5",
		Yellow:   "#f9e2af",
		Red:      "#f38ba8",
	}
	Latte = Palette{
		Name:     "latte",
		Text:     "#4c4f69",
		Subtle:   "#6c6f85",
		Border:   "#9ca0b0",
		Selected: "#1e66f5",
		Focused:  "#40a02b",
		Base:     "#eff1f5",
		Blue:     "#1e66f5",
		Green:    "#40a02b",
		Peach:    "#fe640b",
		Mauve:    "#8839ef",
		Teal:     "#179299",
		Yellow:   "#df8e1d",
		Red:      "#d20f39",
	}
)
