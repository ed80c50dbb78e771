package phrase

import "strings"

// Length is the number of words in a recovery phrase.
const Length = 12

// Slots is the ordered phrase. Being an array, its length cannot change.
type Slots [Length]Word

// IsComplete reports whether every slot is filled.
func (s Slots) IsComplete() bool {
	for _, w := range s {
		if w.Empty() {
			return false
		}
	}
	return true
}

// IsPristine reports whether every slot is empty.
func (s Slots) IsPristine() bool {
	for _, w := range s {
		if !w.Empty() {
			return false
		}
	}
	return true
}

// Filled returns how many slots hold a word.
func (s Slots) Filled() int {
	n := 0
	for _, w := range s {
		if !w.Empty() {
			n++
		}
	}
	return n
}

// Strings returns the words as plain strings, in phrase order.
func (s Slots) Strings() []string {
	out := make([]string, Length)
	for i, w := range s {
		out[i] = string(w)
	}
	return out
}

// String joins the words with single spaces, the clipboard and QR payload.
func (s Slots) String() string {
	return strings.Join(s.Strings(), " ")
}

// Distribute spreads pasted text over the phrase.
//
// A multi-token paste always starts at slot 0 regardless of focus; a single
// token lands on the focused slot. Tokens past the last slot are dropped and
// slots the paste does not reach keep their value.
func Distribute(text string, focus int, current Slots) Slots {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return current
	}

	start := 0
	if len(tokens) == 1 {
		start = focus
	}
	if start < 0 || start >= Length {
		return current
	}

	next := current
	for i, tok := range tokens {
		idx := start + i
		if idx >= Length {
			break
		}
		next[idx] = Sanitize(tok)
	}
	return next
}
