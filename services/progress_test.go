package services

import (
	"testing"
	"time"

	"fluentwork/models"
)

func TestProgressTrackerDefaults(t *testing.T) {
	tracker := NewProgressTracker()
	progress := tracker.Snapshot()

	if progress.TotalSessions != 0 {
		t.Errorf("expected zero completed sessions, got %d", progress.TotalSessions)
	}
	if progress.CurrentComplexity != models.ComplexityEasy {
		t.Errorf("expected easy starting tier, got %s", progress.CurrentComplexity)
	}
	if progress.StreakDays != 0 || progress.LastSessionDate != nil {
		t.Errorf("expected untouched streak and last-session date")
	}
}

func TestCompleteRecomputesTierPostIncrement(t *testing.T) {
	tracker := NewProgressTracker()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return now }

	// After the second completion the post-increment count is 2, so the
	// displayed tier already moves to medium.
	tracker.Complete()
	progress := tracker.Complete()

	if progress.TotalSessions != 2 {
		t.Errorf("expected 2 completed sessions, got %d", progress.TotalSessions)
	}
	if progress.CurrentComplexity != models.ComplexityMedium {
		t.Errorf("expected medium tier after second completion, got %s", progress.CurrentComplexity)
	}
	if progress.StreakDays != 1 {
		t.Errorf("expected streak pinned to 1, got %d", progress.StreakDays)
	}
	if progress.LastSessionDate == nil || !progress.LastSessionDate.Equal(now) {
		t.Errorf("expected last-session date set to completion time")
	}
}

func TestCompleteReachesHardTier(t *testing.T) {
	tracker := NewProgressTracker()
	var progress models.UserProgress
	for i := 0; i < 6; i++ {
		progress = tracker.Complete()
	}
	if progress.CurrentComplexity != models.ComplexityHard {
		t.Errorf("expected hard tier at 6 completions, got %s", progress.CurrentComplexity)
	}
	progress = tracker.Complete()
	if progress.CurrentComplexity != models.ComplexityMedium {
		t.Errorf("expected medium tier at 7 completions, got %s", progress.CurrentComplexity)
	}
}

func TestReset(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Complete()
	tracker.Complete()
	tracker.Reset()

	progress := tracker.Snapshot()
	if progress.TotalSessions != 0 || progress.StreakDays != 0 || progress.LastSessionDate != nil {
		t.Errorf("expected defaults after reset, got %+v", progress)
	}
	if progress.CurrentComplexity != models.ComplexityEasy {
		t.Errorf("expected easy tier after reset, got %s", progress.CurrentComplexity)
	}
}
