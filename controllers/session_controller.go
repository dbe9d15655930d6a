package controllers

import (
	"errors"
	"net/http"

	"fluentwork/models"
	"fluentwork/services"

	"github.com/gin-gonic/gin"
)

// SessionController exposes the session lifecycle over HTTP. It holds the
// app's components explicitly; there is no package-level state.
type SessionController struct {
	engine   *services.Engine
	scorer   services.PerformanceScorer
	progress *services.ProgressTracker
}

func NewSessionController(engine *services.Engine, scorer services.PerformanceScorer, progress *services.ProgressTracker) *SessionController {
	return &SessionController{
		engine:   engine,
		scorer:   scorer,
		progress: progress,
	}
}

// StartSession creates a new practice session for the current progress tier
func (sc *SessionController) StartSession(c *gin.Context) {
	sess, err := sc.engine.StartSession(sc.progress.Snapshot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.StartSessionResponse{
		SessionID:           sess.ID,
		ScenarioDescription: sess.Scenario.Context,
		InitialPrompt:       sess.Scenario.InitialPrompt,
		HelpfulPhrases:      sess.Scenario.HelpfulPhrases,
	})
}

// GetManagerResponse submits the user's utterance and returns the manager's
// reply plus the end-of-session flag.
func (sc *SessionController) GetManagerResponse(c *gin.Context) {
	var req models.ManagerResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	reply, ended, err := sc.engine.SubmitUserTurn(c.Request.Context(), req.SessionID, req.UserMessage)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, services.ErrSessionInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session is no longer active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.ManagerResponseResponse{
		ManagerResponse:  reply,
		ShouldEndSession: ended,
	})
}

// GetFeedback scores a finished session's transcript and records the
// completed session in the user's progress.
func (sc *SessionController) GetFeedback(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	sess, ok := sc.engine.Store().Get(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	sess.Lock()
	userMessages := sess.UserMessages()
	scenario := sess.Scenario
	sess.Unlock()

	feedback := services.AnalyzeConversation(c.Request.Context(), sc.scorer, userMessages, scenario)
	sc.progress.Complete()

	c.JSON(http.StatusOK, models.FeedbackResponse{
		ClarityScore:      feedback.ClarityScore,
		FluencyScore:      feedback.FluencyScore,
		ProfessionalScore: feedback.ProfessionalScore,
		OneImprovement:    feedback.ImprovementTip,
	})
}

// DeleteSession removes a session from the store
func (sc *SessionController) DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")
	if !sc.engine.Store().Delete(sessionID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

// DebugSessions lists all stored sessions (development aid)
func (sc *SessionController) DebugSessions(c *gin.Context) {
	sessions := sc.engine.Store().All()
	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		sess.Lock()
		summaries = append(summaries, models.SessionSummary{
			ID:        sess.ID,
			Scenario:  sess.Scenario.PrimaryTopic,
			Exchanges: sess.ExchangeCount(),
			IsActive:  sess.IsActive,
		})
		sess.Unlock()
	}
	c.JSON(http.StatusOK, gin.H{
		"totalSessions": len(summaries),
		"sessions":      summaries,
	})
}
