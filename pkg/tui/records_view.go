package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// recordList is the browsable list of stored wallets
type recordList struct {
	cursor int
}

// clamp keeps the cursor inside a list of n records
func (l *recordList) clamp(n int) {
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *recordList) up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *recordList) down(n int) {
	if l.cursor < n-1 {
		l.cursor++
	}
}

// current returns the record under the cursor
func (l *recordList) current(records []store.WalletRecord) (store.WalletRecord, bool) {
	if l.cursor < 0 || l.cursor >= len(records) {
		return store.WalletRecord{}, false
	}
	return records[l.cursor], true
}

func (l *recordList) view(records []store.WalletRecord, selected string, focused, loading bool, width, maxRows int) string {
	border := InactiveBorderStyle
	titleStyle := HeaderStyle
	if focused {
		border = ActiveBorderStyle
		titleStyle = TitleStyle
	}

	title := fmt.Sprintf("SAVED WALLETS (%d)", len(records))
	if loading {
		title += " " + DimStyle.Render("loading…")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	if len(records) == 0 {
		b.WriteString(DimStyle.Render("No saved wallets yet. Press ^s to save the current phrase."))
	}

	start, end := visibleRange(len(records), l.cursor, maxRows)
	for i := start; i < end; i++ {
		r := records[i]
		marker := "  "
		if r.ID == selected {
			marker = "● "
		}
		date := r.CreatedAt.Local().Format("2006-01-02 15:04")
		line := fmt.Sprintf("%s%-14s %2d words  %s", marker, r.Name, len(r.Words), date)
		line = truncate.StringWithTail(line, uint(contentWidth), "…")

		switch {
		case focused && i == l.cursor:
			b.WriteString(SelectedStyle.Render("▸ " + line))
		case r.ID == selected:
			b.WriteString(SuccessStyle.Render("  " + line))
		default:
			b.WriteString(NormalStyle.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if focused {
		b.WriteString("\n\n")
		b.WriteString(DimStyle.Render("enter load  esc back"))
	}

	if width > 2 {
		border = border.Width(width - 2)
	}
	return border.Padding(0, 1).Render(b.String())
}

// visibleRange returns the window of rows to draw so the cursor stays visible
func visibleRange(n, cursor, maxRows int) (int, int) {
	if maxRows <= 0 || n <= maxRows {
		return 0, n
	}
	start := cursor - maxRows/2
	if start < 0 {
		start = 0
	}
	if start+maxRows > n {
		start = n - maxRows
	}
	return start, start + maxRows
}
