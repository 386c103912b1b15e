package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles panels drawn in the middle of a screen area
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPanel centers a styled panel in a width x height area. The panel
// is capped to the area minus a small margin.
func (pr *PopupRenderer) RenderPanel(content string, width, height int, style lipgloss.Style) string {
	if maxW := width - 6; maxW > 10 && lipgloss.Width(style.Render(content)) > maxW {
		style = style.Width(maxW - style.GetHorizontalFrameSize())
	}
	panel := style.Render(content)
	if width <= 0 || height <= 0 {
		return panel
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
