package notify

import (
	"testing"
	"time"
)

func TestChannelNotify(t *testing.T) {
	c := NewChannel(0)
	if c.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", c.Duration, DefaultDuration)
	}

	cmd := c.Notify("Saved", Success)
	if cmd == nil {
		t.Fatal("Notify should return a dismissal command")
	}

	n := c.Current()
	if n == nil || n.Message != "Saved" || n.Variant != Success {
		t.Fatalf("Current() = %+v, want Saved/success", n)
	}
	if got := c.Render(); got != "✓ Saved" {
		t.Errorf("Render() = %q", got)
	}
}

func TestChannelReplacementRestartsTimer(t *testing.T) {
	c := NewChannel(time.Second)

	c.Notify("first", Info)
	firstSeq := c.Seq()
	c.Notify("second", Error)

	// The first notification's tick arrives after it was replaced
	if c.Dismiss(DismissMsg{Seq: firstSeq}) {
		t.Error("stale dismissal must not clear the replacement")
	}
	if n := c.Current(); n == nil || n.Message != "second" {
		t.Fatalf("Current() = %+v, want second", n)
	}

	if !c.Dismiss(DismissMsg{Seq: c.Seq()}) {
		t.Error("matching dismissal should clear the notification")
	}
	if c.Current() != nil {
		t.Error("notification should be gone after dismissal")
	}
	if c.Render() != "" {
		t.Error("Render() should be empty with nothing visible")
	}
}

func TestChannelExpiresWithoutTick(t *testing.T) {
	c := NewChannel(time.Second)
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Notify("hello", Info)
	now = now.Add(2 * time.Second)

	if c.Current() != nil {
		t.Error("notification should expire once its interval has passed")
	}
}

func TestChannelDismissCommand(t *testing.T) {
	c := NewChannel(time.Millisecond)
	cmd := c.Notify("tick", Info)

	msg, ok := cmd().(DismissMsg)
	if !ok {
		t.Fatalf("command produced %T, want DismissMsg", msg)
	}
	if msg.Seq != c.Seq() {
		t.Errorf("DismissMsg.Seq = %d, want %d", msg.Seq, c.Seq())
	}
}

func TestShowNil(t *testing.T) {
	c := NewChannel(0)
	if c.Show(nil) != nil {
		t.Error("Show(nil) should be a no-op")
	}
	if c.Show(Notice("x", Error)) == nil {
		t.Error("Show should schedule a dismissal")
	}
}

func TestVariantIcons(t *testing.T) {
	tests := []struct {
		variant Variant
		icon    string
		name    string
	}{
		{Success, "✓", "success"},
		{Error, "×", "error"},
		{Info, "ℹ", "info"},
	}
	for _, tt := range tests {
		if tt.variant.Icon() != tt.icon || tt.variant.String() != tt.name {
			t.Errorf("variant %d: got %q/%q", tt.variant, tt.variant.Icon(), tt.variant.String())
		}
	}
}
