package models

// StartSessionResponse is returned when a new practice session is created
type StartSessionResponse struct {
	SessionID           string   `json:"sessionId"`
	ScenarioDescription string   `json:"scenarioDescription"`
	InitialPrompt       string   `json:"initialPrompt"`
	HelpfulPhrases      []string `json:"helpfulPhrases"`
}

// ManagerResponseRequest carries the user's latest utterance for a session
type ManagerResponseRequest struct {
	SessionID   string `json:"sessionId" binding:"required"`
	UserMessage string `json:"userMessage" binding:"required"`
}

// ManagerResponseResponse is the manager's reply plus the end-of-session flag
type ManagerResponseResponse struct {
	ManagerResponse  string `json:"managerResponse"`
	ShouldEndSession bool   `json:"shouldEndSession"`
}

// FeedbackResponse reports the three scores and the single improvement tip
type FeedbackResponse struct {
	ClarityScore      float64 `json:"clarityScore"`
	FluencyScore      float64 `json:"fluencyScore"`
	ProfessionalScore float64 `json:"professionalScore"`
	OneImprovement    string  `json:"oneImprovement"`
}

// UserProgressResponse summarizes the user's progress for the client
type UserProgressResponse struct {
	SessionsCompleted int    `json:"sessionsCompleted"`
	CurrentLevel      string `json:"currentLevel"`
	Streak            int    `json:"streak"`
}

// SpeechToTextRequest carries base64-encoded audio for transcription
type SpeechToTextRequest struct {
	AudioBase64 string `json:"audioBase64" binding:"required"`
}

// SpeechToTextResponse is the transcription result
type SpeechToTextResponse struct {
	TranscribedText string  `json:"transcribedText"`
	ConfidenceScore float64 `json:"confidenceScore,omitempty"`
}

// SessionSummary is a compact view of one stored session (debug listing)
type SessionSummary struct {
	ID        string `json:"id"`
	Scenario  string `json:"scenario"`
	Exchanges int    `json:"exchanges"`
	IsActive  bool   `json:"isActive"`
}
