package phrase

import "strings"

// Word is a normalized phrase word: empty, or ASCII letters with only the
// first one upper-cased.
type Word string

// Sanitize lower-cases raw, drops everything outside a-z and capitalizes
// the first remaining letter. It never fails.
func Sanitize(raw string) Word {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return ""
	}
	return Word(strings.ToUpper(s[:1]) + s[1:])
}

// Empty reports whether the slot holding w is unfilled
func (w Word) Empty() bool {
	return strings.TrimSpace(string(w)) == ""
}

func (w Word) String() string {
	return string(w)
}

// firstToken returns the first whitespace-delimited token of raw, or "".
func firstToken(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
