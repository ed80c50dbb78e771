package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPhrasePanelNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   tea.KeyMsg
		want  int
	}{
		{name: "tab moves right", start: 0, key: keyPress(tea.KeyTab), want: 1},
		{name: "tab wraps", start: 11, key: keyPress(tea.KeyTab), want: 0},
		{name: "enter moves right", start: 4, key: keyPress(tea.KeyEnter), want: 5},
		{name: "shift+tab moves left", start: 5, key: keyPress(tea.KeyShiftTab), want: 4},
		{name: "shift+tab wraps", start: 0, key: keyPress(tea.KeyShiftTab), want: 11},
		{name: "down moves a row", start: 1, key: keyPress(tea.KeyDown), want: 4},
		{name: "down stops at last row", start: 10, key: keyPress(tea.KeyDown), want: 10},
		{name: "up moves a row", start: 7, key: keyPress(tea.KeyUp), want: 4},
		{name: "up stops at first row", start: 2, key: keyPress(tea.KeyUp), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPhrasePanel("Phrase")
			p.Focus()
			p.FocusSlot(tt.start)

			p.Update(tt.key)

			if p.Focused() != tt.want {
				t.Errorf("focus = %d, want %d", p.Focused(), tt.want)
			}
		})
	}
}

func TestPhrasePanelPasteUsesFocus(t *testing.T) {
	p := NewPhrasePanel("Phrase")
	p.Focus()
	p.FocusSlot(7)

	if !p.Paste("  HELLO!  ") {
		t.Fatal("single token paste did not land")
	}
	if got := p.inputs[7].Value(); got != "Hello" {
		t.Errorf("input 7 shows %q", got)
	}
	if p.Paste(" \n\t ") {
		t.Error("whitespace paste reported a change")
	}
}

func TestPhrasePanelStatus(t *testing.T) {
	p := NewPhrasePanel("Phrase")
	p.Paste(twelveWords)
	p.phrase.Copied = true

	status := p.Status()
	for _, want := range []string{"12/12 words", "complete", "Copied!"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
}

func TestPhrasePanelTypingKeepsCursor(t *testing.T) {
	tests := []struct {
		name      string
		typed     string
		wantValue string
		wantPos   int
	}{
		{name: "letter at column 0", typed: "x", wantValue: "Xabc", wantPos: 1},
		{name: "dropped digit at column 0", typed: "1", wantValue: "Abc", wantPos: 0},
		{name: "upper case letter", typed: "Q", wantValue: "Qabc", wantPos: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPhrasePanel("Phrase")
			p.Focus()
			p.Paste("abc")
			p.inputs[0].SetCursor(0)

			p.Update(runes(tt.typed))

			if got := p.inputs[0].Value(); got != tt.wantValue {
				t.Errorf("value = %q, want %q", got, tt.wantValue)
			}
			if got := p.inputs[0].Position(); got != tt.wantPos {
				t.Errorf("cursor = %d, want %d", got, tt.wantPos)
			}
		})
	}
}

func TestSanitizedCursor(t *testing.T) {
	tests := []struct {
		raw   string
		pos   int
		limit int
		want  int
	}{
		{raw: "Ab1c", pos: 3, limit: 3, want: 2},
		{raw: "Ab1c", pos: 4, limit: 3, want: 3},
		{raw: "-abc", pos: 1, limit: 3, want: 0},
		{raw: "abc", pos: 0, limit: 3, want: 0},
	}
	for _, tt := range tests {
		if got := sanitizedCursor(tt.raw, tt.pos, tt.limit); got != tt.want {
			t.Errorf("sanitizedCursor(%q, %d) = %d, want %d", tt.raw, tt.pos, got, tt.want)
		}
	}
}
