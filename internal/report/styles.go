package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Markers prefix list entries and check outcomes. They stay in the
// output even without color so piped reports remain readable.
const (
	MarkerOK   = "[OK]"
	MarkerFail = "[!!]"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a
// TTY.
type Styles struct {
	// Header styles section title lines.
	Header lipgloss.Style

	// Bar styles the "=" section separators.
	Bar lipgloss.Style

	// Label styles summary line labels.
	Label lipgloss.Style

	// Pass and Fail style the OK / violation markers.
	Pass lipgloss.Style
	Fail lipgloss.Style

	// Muted is used for de-emphasized detail lines.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Label:  lipgloss.NewStyle().Bold(true),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// marker returns the styled OK or fail marker.
func (s Styles) marker(ok bool) string {
	if ok {
		return s.Pass.Render(MarkerOK)
	}
	return s.Fail.Render(MarkerFail)
}
