package phrase

import (
	"testing"

	"github.com/seedpad/seedpad-terminal/pkg/export"
)

func TestPhraseSetWord(t *testing.T) {
	p := New()
	p.Copied = true

	p.SetWord(2, "apple banana cherry")
	if got := p.Word(2); got != "Apple" {
		t.Errorf("SetWord kept %q, want %q", got, "Apple")
	}
	if p.Word(3) != "" {
		t.Error("SetWord must not spill into neighbouring slots")
	}
	if p.Copied {
		t.Error("SetWord should reset the copied flag")
	}

	p.SetWord(2, "   ")
	if p.Word(2) != "" {
		t.Errorf("blank input should empty the slot, got %q", p.Word(2))
	}

	p.SetWord(-1, "x")
	p.SetWord(Length, "x")
	if !p.IsPristine() {
		t.Error("out of range SetWord should be ignored")
	}
}

func TestPhrasePaste(t *testing.T) {
	p := New()
	if p.Paste("   ", 0) {
		t.Error("empty paste should report no change")
	}
	if !p.Paste("zebra apple", 4) {
		t.Error("paste should report a change")
	}
	if p.Word(0) != "Zebra" || p.Word(1) != "Apple" {
		t.Errorf("unexpected words after paste: %v", p.Slots().Strings())
	}
}

func TestPhraseLoad(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []string
		want     Slots
	}{
		{
			name:     "short snapshot pads with empty words",
			snapshot: []string{"Alpha", "Bravo"},
			want:     filledSlots("Alpha", "Bravo"),
		},
		{
			name: "long snapshot is truncated",
			snapshot: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
				"M", "N"},
			want: filledSlots("A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"),
		},
		{
			name:     "values are not re-sanitized",
			snapshot: []string{"lower", "MiXeD"},
			want:     filledSlots("lower", "MiXeD"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.SetWord(11, "stale")
			p.Load(tt.snapshot)
			if p.Slots() != tt.want {
				t.Errorf("Load() = %v, want %v", p.Slots().Strings(), tt.want.Strings())
			}
		})
	}
}

func TestPhraseLoadThenClear(t *testing.T) {
	p := New()
	p.Load([]string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
		"Nine", "Ten", "Eleven", "Twelve"})
	p.Copied = true
	p.QR = &export.Image{PNG: []byte{0x89, 'P', 'N', 'G'}}

	p.Clear()

	if p.Slots() != (Slots{}) {
		t.Errorf("Clear() left %v", p.Slots().Strings())
	}
	if p.Copied || p.QR != nil {
		t.Error("Clear() should drop derived display state")
	}
}
