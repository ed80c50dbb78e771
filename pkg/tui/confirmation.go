package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmOption is one answer a confirmation accepts
type ConfirmOption struct {
	Keys   []string     // Keys that pick this option, e.g. "u", "U"
	Label  string       // Shown as "[u] Label"
	Color  string       // lipgloss color for the key hint
	Action func() tea.Cmd
}

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title   string          // Title for the dialog (optional)
	Message string          // Main confirmation message
	Warning string          // Optional warning text (shown in orange)
	Details []string        // Optional detail lines
	Options []ConfirmOption // Answers, in display order
	Width   int             // Dialog width
}

// ConfirmationModel handles confirmation prompts. esc always picks the
// cancel action.
type ConfirmationModel struct {
	active   bool
	config   ConfirmationConfig
	onCancel func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	pressed := msg.String()
	if pressed == "esc" {
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	for _, opt := range m.config.Options {
		for _, k := range opt.Keys {
			if k != pressed {
				continue
			}
			m.active = false
			if opt.Action != nil {
				return opt.Action()
			}
			return nil
		}
	}
	return nil
}

// View renders the dialog
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	contentWidth := width - 6 // border and padding
	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var content strings.Builder

	if m.config.Title != "" {
		content.WriteString(center.Render(headerStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}

	if m.config.Message != "" {
		content.WriteString(center.Render(wordwrap.String(m.config.Message, contentWidth)))
		content.WriteString("\n")
	}

	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(center.Render(WarningStyle.Render(wordwrap.String(m.config.Warning, contentWidth))))
		content.WriteString("\n")
	}

	if len(m.config.Details) > 0 {
		content.WriteString("\n")
		for _, detail := range m.config.Details {
			content.WriteString(detailStyle.Render("  • " + detail))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(center.Render(m.renderOptions()))

	return borderStyle.Width(width).Render(content.String())
}

func (m *ConfirmationModel) renderOptions() string {
	parts := make([]string, 0, len(m.config.Options)+1)
	for _, opt := range m.config.Options {
		hint := lipgloss.NewStyle().
			Foreground(lipgloss.Color(opt.Color)).
			Bold(true).
			Render("[" + opt.Keys[0] + "]")
		parts = append(parts, hint+" "+opt.Label)
	}
	parts = append(parts, DimStyle.Render("[esc] Cancel"))
	return strings.Join(parts, "   ")
}
