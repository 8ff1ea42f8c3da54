package cli

import "github.com/charmbracelet/lipgloss"

var (
	groupHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	archivedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// Heat-map bands for daily completion percentages.
	heatLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	heatMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	heatHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	heatFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)
	heatNoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// heatStyle picks the color band for a day's completion percentage.
func heatStyle(percent int, hasTasks bool) lipgloss.Style {
	switch {
	case !hasTasks:
		return heatNoneStyle
	case percent >= 100:
		return heatFullStyle
	case percent >= 66:
		return heatHighStyle
	case percent >= 33:
		return heatMidStyle
	default:
		return heatLowStyle
	}
}
