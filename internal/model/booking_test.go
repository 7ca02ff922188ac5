package model

import (
	"testing"
	"time"
)

func TestStatusAt(t *testing.T) {
	start := time.Date(2025, 10, 24, 10, 0, 0, 0, time.UTC)
	b := Booking{CreatedAt: start, Duration: 2}

	cases := []struct {
		name string
		now  time.Time
		want BookingStatus
	}{
		{"well before start", start.Add(-3 * time.Hour), StatusUpcoming},
		{"one second before start", start.Add(-time.Second), StatusUpcoming},
		{"exactly at start", start, StatusActive},
		{"mid window", start.Add(time.Hour), StatusActive},
		{"exactly at end", start.Add(2 * time.Hour), StatusActive},
		{"one second after end", start.Add(2*time.Hour + time.Second), StatusCompleted},
		{"long after end", start.Add(48 * time.Hour), StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.StatusAt(tc.now); got != tc.want {
				t.Errorf("StatusAt(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestStatusAtZeroDuration(t *testing.T) {
	start := time.Date(2025, 10, 24, 10, 0, 0, 0, time.UTC)
	b := Booking{CreatedAt: start, Duration: 0}
	// A zero-hour window is still Active at its single instant.
	if got := b.StatusAt(start); got != StatusActive {
		t.Errorf("StatusAt(start) = %q, want %q", got, StatusActive)
	}
	if got := b.StatusAt(start.Add(time.Second)); got != StatusCompleted {
		t.Errorf("StatusAt(start+1s) = %q, want %q", got, StatusCompleted)
	}
}

func TestStatusAtIsPure(t *testing.T) {
	start := time.Date(2025, 10, 24, 10, 0, 0, 0, time.UTC)
	b := Booking{CreatedAt: start, Duration: 2}
	now := start.Add(time.Hour)
	first := b.StatusAt(now)
	for i := 0; i < 10; i++ {
		if got := b.StatusAt(now); got != first {
			t.Fatalf("StatusAt is not deterministic: %q then %q", first, got)
		}
	}
	if b.Status != "" {
		t.Errorf("StatusAt mutated the receiver: Status = %q", b.Status)
	}
}
