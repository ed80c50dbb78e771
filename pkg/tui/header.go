package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const securityWarning = "Never share your recovery phrase. Anyone holding these words controls the wallet. " +
	"Phrases are stored unencrypted."

func renderHeader(width int, title, subtitle string, showWarning bool) string {
	logo := `▄▖▄▖▄▖▄▖▄▖▄▖▄
▚ ▙▖▙▖▌▌▙▌▌▌▌▌
▄▌▙▖▙▖▙▘▌ ▛▌▙▘`

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Header padding style (matching pane padding)
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	contentWidth := width - 2
	logoRendered := logoStyle.Render(logo)

	left := titleStyle.Render(title)
	if subtitle != "" {
		left = lipgloss.JoinVertical(lipgloss.Left, left, DimStyle.Render(subtitle))
	}

	gap := contentWidth - lipgloss.Width(left) - lipgloss.Width(logoRendered)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)

	if showWarning {
		warning := wordwrap.String("⚠️  "+securityWarning, contentWidth)
		header = lipgloss.JoinVertical(lipgloss.Left, header, "", WarningStyle.Render(warning))
	}

	return headerPadding.Render(header)
}
