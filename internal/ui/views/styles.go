package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Path          lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Key           lipgloss.Style
	MenuItem      lipgloss.Style
	MenuDisabled  lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	SceneHeader   lipgloss.Style
	Canvas        lipgloss.Style
	ErrorPanel    lipgloss.Style
	ErrorTitle    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Bold(true),
		Path:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Key:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
		Prompt:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(0, 2),
		SceneHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Canvas:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		ErrorPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2),
		ErrorTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
