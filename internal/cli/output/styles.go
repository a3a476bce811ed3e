package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Underline(true),
		Header2:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Info:     r.NewStyle().Foreground(lipgloss.Color("6")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		FilePath: r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	}
}
