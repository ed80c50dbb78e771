// Package notify implements the single-slot, self-dismissing status line.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 2500 * time.Millisecond

// Variant is the kind of a notification.
type Variant int

const (
	Success Variant = iota
	Error
	Info
)

// String returns the variant name used in logs.
func (v Variant) String() string {
	switch v {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Icon returns the glyph shown in front of the message.
func (v Variant) Icon() string {
	switch v {
	case Success:
		return "✓"
	case Error:
		return "×"
	default:
		return "ℹ"
	}
}

// Notification is a message waiting to be shown.
type Notification struct {
	Message string
	Variant Variant
}

// Notice builds a Notification.
func Notice(message string, variant Variant) *Notification {
	return &Notification{Message: message, Variant: variant}
}

// DismissMsg is delivered when a notification's timer expires.
type DismissMsg struct {
	Seq uint64
}

// Channel holds at most one visible notification.
//
// Every Notify bumps a sequence number and schedules a DismissMsg for it; a
// dismissal for an older sequence is ignored, so a replacement always gets
// its full interval.
type Channel struct {
	Duration time.Duration

	current *Notification
	seq     uint64
	now     func() time.Time
	until   time.Time
}

// NewChannel returns a channel using duration, or DefaultDuration when zero.
func NewChannel(duration time.Duration) *Channel {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Channel{Duration: duration, now: time.Now}
}

// Notify replaces the visible notification and returns the command that
// dismisses it.
func (c *Channel) Notify(message string, variant Variant) tea.Cmd {
	c.seq++
	c.current = &Notification{Message: message, Variant: variant}
	c.until = c.now().Add(c.Duration)

	seq := c.seq
	return tea.Tick(c.Duration, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Show is Notify for a prepared Notification; nil is a no-op.
func (c *Channel) Show(n *Notification) tea.Cmd {
	if n == nil {
		return nil
	}
	return c.Notify(n.Message, n.Variant)
}

// Dismiss handles a DismissMsg and reports whether the visible
// notification was cleared.
func (c *Channel) Dismiss(msg DismissMsg) bool {
	if msg.Seq != c.seq || c.current == nil {
		return false
	}
	c.current = nil
	return true
}

// Current returns the visible notification, or nil.
func (c *Channel) Current() *Notification {
	if c.current == nil {
		return nil
	}
	// Covers a dismissal tick that was never delivered
	if c.now().After(c.until) {
		c.current = nil
		return nil
	}
	return c.current
}

// Seq returns the sequence number of the latest notification.
func (c *Channel) Seq() uint64 {
	return c.seq
}

// Render returns the icon-prefixed message, or "" when nothing is visible.
func (c *Channel) Render() string {
	n := c.Current()
	if n == nil {
		return ""
	}
	return n.Variant.Icon() + " " + n.Message
}
