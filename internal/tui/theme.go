package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/enerwatch/ewdash/internal/dashboard"
	"github.com/enerwatch/ewdash/internal/widgets"
)

// Presenter applies the dashboard theme to the terminal renderer. It
// satisfies dashboard.Presenter.
type Presenter struct {
	palette atomic.Pointer[widgets.Palette]
}

func NewPresenter() *Presenter {
	p := &Presenter{}
	p.ApplyPresentationMode(dashboard.ThemeLight)
	return p
}

func (p *Presenter) ApplyPresentationMode(t dashboard.Theme) {
	pal := widgets.Latte
	if t == dashboard.ThemeDark {
		pal = widgets.Mocha
	}
	lipgloss.SetHasDarkBackground(t == dashboard.ThemeDark)
	p.palette.Store(&pal)
}

// Palette returns the colors for the mode applied last.
func (p *Presenter) Palette() widgets.Palette {
	if pal := p.palette.Load(); pal != nil {
		return *pal
	}
	return widgets.Latte
}

func kindAccent(pal widgets.Palette, k dashboard.WidgetKind) lipgloss.Color {
	switch k {
	case dashboard.KindChart:
		return pal.Blue
	case dashboard.KindDepartments:
		return pal.Mauve
	case dashboard.KindGauge:
		return pal.Peach
	default:
		return pal.Teal
	}
}
