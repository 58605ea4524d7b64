package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewManual(start)

	if got := c.Now(); !got.Equal(start) {
		t.Fatalf("expected %v, got %v", start, got)
	}
	want := start.Add(1500 * time.Millisecond)
	if got := c.Advance(1500 * time.Millisecond); !got.Equal(want) {
		t.Fatalf("Advance: expected %v, got %v", want, got)
	}
	if got := c.Now(); !got.Equal(want) {
		t.Fatalf("Now after Advance: expected %v, got %v", want, got)
	}
}

func TestManualSetIgnoresPast(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewManual(start)

	c.Set(start.Add(-time.Hour))
	if got := c.Now(); !got.Equal(start) {
		t.Fatalf("clock moved backwards to %v", got)
	}

	c.Set(start.Add(time.Hour))
	if got := c.Now(); !got.Equal(start.Add(time.Hour)) {
		t.Fatalf("expected %v, got %v", start.Add(time.Hour), got)
	}
}

func TestSystemNowIsUTC(t *testing.T) {
	t.Parallel()

	now := NewSystem().Now()
	if now.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", now.Location())
	}
	if now.Nanosecond()%int(time.Microsecond) != 0 {
		t.Fatalf("expected microsecond precision, got %v", now)
	}
}
