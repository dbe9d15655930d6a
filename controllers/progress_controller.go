package controllers

import (
	"net/http"

	"fluentwork/internal/session"
	"fluentwork/models"
	"fluentwork/services"

	"github.com/gin-gonic/gin"
)

// ProgressController exposes the user's progress record and the reset flow
type ProgressController struct {
	progress *services.ProgressTracker
	store    *session.Store
}

func NewProgressController(progress *services.ProgressTracker, store *session.Store) *ProgressController {
	return &ProgressController{progress: progress, store: store}
}

// GetProgress reports sessions completed, current level and streak
func (pc *ProgressController) GetProgress(c *gin.Context) {
	progress := pc.progress.Snapshot()
	c.JSON(http.StatusOK, models.UserProgressResponse{
		SessionsCompleted: progress.TotalSessions,
		CurrentLevel:      string(progress.CurrentComplexity),
		Streak:            progress.StreakDays,
	})
}

// ResetProgress restores progress defaults and drops all stored sessions
func (pc *ProgressController) ResetProgress(c *gin.Context) {
	pc.progress.Reset()
	pc.store.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Progress reset successfully"})
}
