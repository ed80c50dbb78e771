package phrase

import "github.com/seedpad/seedpad-terminal/pkg/export"

// Phrase is the editable state behind one phrase panel: the words plus the
// display state derived from them.
type Phrase struct {
	slots Slots

	// Copied is set after a successful clipboard copy and reset by any edit.
	Copied bool
	// QR holds the last rendered export image, if any.
	QR *export.Image
}

// New returns an empty phrase.
func New() *Phrase {
	return &Phrase{}
}

// Slots returns a copy of the current words.
func (p *Phrase) Slots() Slots {
	return p.slots
}

// Word returns the word at index i, or "" when i is out of range.
func (p *Phrase) Word(i int) Word {
	if i < 0 || i >= Length {
		return ""
	}
	return p.slots[i]
}

func (p *Phrase) IsComplete() bool { return p.slots.IsComplete() }
func (p *Phrase) IsPristine() bool { return p.slots.IsPristine() }

// String returns the space-joined phrase.
func (p *Phrase) String() string {
	return p.slots.String()
}

// SetWord handles a keystroke edit of slot i. Only the first token of raw is
// kept; any extra text typed or pasted into the field is dropped.
func (p *Phrase) SetWord(i int, raw string) {
	if i < 0 || i >= Length {
		return
	}
	p.slots[i] = Sanitize(firstToken(raw))
	p.Copied = false
}

// Paste distributes clipboard text starting from the focused slot and
// reports whether any slot changed.
func (p *Phrase) Paste(text string, focus int) bool {
	next := Distribute(text, focus, p.slots)
	if next == p.slots {
		return false
	}
	p.slots = next
	p.Copied = false
	return true
}

// Clear empties every slot and drops derived display state.
func (p *Phrase) Clear() {
	p.slots = Slots{}
	p.Copied = false
	p.QR = nil
}

// Load mirrors a stored snapshot. Values are trusted and not re-sanitized;
// missing positions become empty and anything past Length is ignored.
func (p *Phrase) Load(snapshot []string) {
	var next Slots
	for i := 0; i < Length && i < len(snapshot); i++ {
		next[i] = Word(snapshot[i])
	}
	p.slots = next
	p.Copied = false
	p.QR = nil
}
