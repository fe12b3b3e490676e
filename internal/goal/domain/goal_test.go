package domain

import (
	"testing"
	"time"
)

func TestSetProgress_ClampsAndTracksCompletion(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in, want      int
		wantCompleted bool
	}{
		{-20, 0, false},
		{0, 0, false},
		{55, 55, false},
		{100, 100, true},
		{250, 100, true},
	}

	for _, tt := range tests {
		var g Goal
		g.SetProgress(tt.in, now)
		if g.Progress != tt.want {
			t.Errorf("SetProgress(%d) progress = %d, want %d", tt.in, g.Progress, tt.want)
		}
		if (g.CompletedAt != nil) != tt.wantCompleted {
			t.Errorf("SetProgress(%d) completedAt = %v, want set=%v", tt.in, g.CompletedAt, tt.wantCompleted)
		}
	}
}

func TestSetProgress_KeepsOriginalCompletionAndClearsOnDrop(t *testing.T) {
	first := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	var g Goal
	g.SetProgress(100, first)
	g.SetProgress(100, first.Add(time.Hour))
	if !g.CompletedAt.Equal(first) {
		t.Errorf("completedAt moved to %v", g.CompletedAt)
	}

	g.SetProgress(90, first)
	if g.CompletedAt != nil {
		t.Error("completedAt should be cleared below 100")
	}
}

func TestDueWithin(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	window := 72 * time.Hour

	soon := Goal{TargetDate: now.Add(48 * time.Hour)}
	later := Goal{TargetDate: now.Add(10 * 24 * time.Hour)}
	overdue := Goal{TargetDate: now.Add(-time.Hour)}
	done := Goal{TargetDate: now.Add(time.Hour), Progress: 100}

	if !soon.DueWithin(now, window) || !overdue.DueWithin(now, window) {
		t.Error("soon and overdue goals should be due")
	}
	if later.DueWithin(now, window) || done.DueWithin(now, window) {
		t.Error("distant and completed goals should not be due")
	}
}
