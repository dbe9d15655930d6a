package services

import (
	"sync"
	"time"

	"fluentwork/models"
)

// ProgressTracker holds the single user's progress record for the lifetime
// of the process. All access goes through the mutex; the record itself is
// only handed out as copies.
type ProgressTracker struct {
	mu       sync.Mutex
	progress models.UserProgress
	now      func() time.Time
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		progress: models.UserProgress{CurrentComplexity: models.ComplexityEasy},
		now:      time.Now,
	}
}

// Snapshot returns a copy of the current progress state
func (t *ProgressTracker) Snapshot() models.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Complete records one finished session: the counter is incremented first
// and the tier recomputed from the post-increment count, so the reported
// level always reflects post-session state. StreakDays is pinned to 1, a
// documented simplification rather than consecutive-day tracking.
func (t *ProgressTracker) Complete() models.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.progress.TotalSessions++
	t.progress.LastSessionDate = &now
	t.progress.CurrentComplexity = NextComplexity(t.progress.TotalSessions)
	t.progress.StreakDays = 1
	return t.progress
}

// Reset restores all fields to their defaults
func (t *ProgressTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = models.UserProgress{CurrentComplexity: models.ComplexityEasy}
}
