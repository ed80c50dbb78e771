package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seedpad/seedpad-terminal/pkg/phrase"
)

const (
	gridColumns = 3
	slotWidth   = 12
)

// PhrasePanel edits one phrase. The phrase is the source of truth; the
// text inputs only mirror it.
type PhrasePanel struct {
	title   string
	phrase  *phrase.Phrase
	inputs  [phrase.Length]textinput.Model
	focus   int
	focused bool
	keys    keyMap

	// loadedID is the record last loaded here, cleared with the slots
	loadedID string

	// copySeq ties a pending "Copied" reset to the copy that set it
	copySeq uint64
}

// NewPhrasePanel creates an empty panel
func NewPhrasePanel(title string) *PhrasePanel {
	p := &PhrasePanel{
		title:  title,
		phrase: phrase.New(),
		keys:   defaultKeyMap(),
	}
	for i := range p.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "word"
		ti.CharLimit = 32
		ti.Width = slotWidth
		// Paste is routed through the distributor by the app
		ti.KeyMap.Paste.SetEnabled(false)
		p.inputs[i] = ti
	}
	return p
}

// Focused returns the index of the focused slot
func (p *PhrasePanel) Focused() int {
	return p.focus
}

// Focus gives keyboard focus to the panel
func (p *PhrasePanel) Focus() tea.Cmd {
	p.focused = true
	return p.inputs[p.focus].Focus()
}

// Blur takes keyboard focus away from the panel
func (p *PhrasePanel) Blur() {
	p.focused = false
	p.inputs[p.focus].Blur()
}

// FocusSlot moves the cursor to slot i, ignoring out of range indexes
func (p *PhrasePanel) FocusSlot(i int) tea.Cmd {
	if i < 0 || i >= phrase.Length {
		return nil
	}
	p.inputs[p.focus].Blur()
	p.focus = i
	if !p.focused {
		return nil
	}
	return p.inputs[i].Focus()
}

// Paste distributes text over the slots and reports whether anything landed
func (p *PhrasePanel) Paste(text string) bool {
	if !p.phrase.Paste(text, p.focus) {
		return false
	}
	p.sync()
	return true
}

// Load replaces the slots with a stored snapshot
func (p *PhrasePanel) Load(id string, words []string) tea.Cmd {
	p.loadedID = id
	p.phrase.Load(words)
	p.sync()
	return p.FocusSlot(0)
}

// Clear empties every slot
func (p *PhrasePanel) Clear() tea.Cmd {
	p.loadedID = ""
	p.phrase.Clear()
	p.sync()
	return p.FocusSlot(0)
}

// sync pushes the phrase into the inputs
func (p *PhrasePanel) sync() {
	for i := range p.inputs {
		w := p.phrase.Word(i).String()
		if p.inputs[i].Value() != w {
			p.inputs[i].SetValue(w)
		}
	}
}

// Update handles typing and slot navigation
func (p *PhrasePanel) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Next):
		return p.FocusSlot((p.focus + 1) % phrase.Length)
	case key.Matches(msg, p.keys.Prev):
		return p.FocusSlot((p.focus + phrase.Length - 1) % phrase.Length)
	case msg.Type == tea.KeyUp:
		return p.FocusSlot(p.focus - gridColumns)
	case msg.Type == tea.KeyDown:
		return p.FocusSlot(p.focus + gridColumns)
	case key.Matches(msg, p.keys.Space):
		// A word never holds a space, so it ends the word
		if p.phrase.Word(p.focus).Empty() {
			return nil
		}
		return p.FocusSlot(p.focus + 1)
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)

	raw := p.inputs[p.focus].Value()
	pos := p.inputs[p.focus].Position()
	p.phrase.SetWord(p.focus, raw)
	if w := p.phrase.Word(p.focus).String(); w != raw {
		p.inputs[p.focus].SetValue(w)
		p.inputs[p.focus].SetCursor(sanitizedCursor(raw, pos, len(w)))
	}
	return cmd
}

// sanitizedCursor maps a cursor in raw onto the word left after dropping
// everything but letters: it sits after the letters typed before it.
func sanitizedCursor(raw string, pos, limit int) int {
	n := 0
	for i, r := range []rune(raw) {
		if i >= pos {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	if n > limit {
		n = limit
	}
	return n
}

// Status summarizes the panel in one line
func (p *PhrasePanel) Status() string {
	filled := p.phrase.Slots().Filled()
	status := fmt.Sprintf("%d/%d words", filled, phrase.Length)
	switch {
	case p.phrase.IsComplete():
		status += "  " + SuccessStyle.Render("✓ complete")
	case p.phrase.IsPristine():
		status += "  " + DimStyle.Render("type or paste your recovery phrase")
	}
	if p.phrase.Copied {
		status += "  " + SuccessStyle.Render("Copied!")
	}
	return status
}

// View renders the slot grid, the status line and the QR code if any
func (p *PhrasePanel) View(width int, active bool) string {
	titleStyle := HeaderStyle
	border := InactiveBorderStyle
	if active {
		titleStyle = TitleStyle
		border = ActiveBorderStyle
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(p.title)))
	b.WriteString("\n\n")

	rows := phrase.Length / gridColumns
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, gridColumns)
		for c := 0; c < gridColumns; c++ {
			cells = append(cells, p.renderSlot(r*gridColumns+c, active))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.Status())

	if p.phrase.QR != nil {
		b.WriteString("\n\n")
		b.WriteString(QRStyle.Render(p.phrase.QR.Art))
	}

	if width > 2 {
		border = border.Width(width - 2)
	}
	return border.Padding(0, 1).Render(b.String())
}

func (p *PhrasePanel) renderSlot(i int, active bool) string {
	label := LabelStyle.Render(fmt.Sprintf("%2d.", i+1))
	if active && i == p.focus {
		label = FocusedLabelStyle.Render(fmt.Sprintf("%2d.", i+1))
	}
	cell := lipgloss.NewStyle().Width(slotWidth + 4).Render(p.inputs[i].View())
	return lipgloss.NewStyle().PaddingRight(2).Render(label + cell)
}
