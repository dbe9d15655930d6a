package models

import "time"

// ComplexityLevel classifies scenarios and the user's current tier
type ComplexityLevel string

const (
	ComplexityEasy   ComplexityLevel = "easy"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHard   ComplexityLevel = "hard"
)

// MessageRole identifies who authored a conversation turn
type MessageRole string

const (
	RoleManager MessageRole = "manager"
	RoleUser    MessageRole = "user"
)

// Message represents a single turn in a practice conversation.
// Immutable once appended to a session's history.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// Scenario is one conversation template from the fixed catalog.
// Loaded once at startup and never mutated.
type Scenario struct {
	ID              string          `json:"id"`
	PrimaryTopic    string          `json:"primaryTopic"`
	ComplexityLevel ComplexityLevel `json:"complexityLevel"`
	SurpriseElement string          `json:"surpriseElement,omitempty"`
	Context         string          `json:"context"`
	InitialPrompt   string          `json:"initialPrompt"`
	HelpfulPhrases  []string        `json:"helpfulPhrases"`
}

// Feedback holds the scored evaluation of one completed session
type Feedback struct {
	ClarityScore      float64 `json:"clarityScore"`      // 0-10
	FluencyScore      float64 `json:"fluencyScore"`      // 0-10
	ProfessionalScore float64 `json:"professionalScore"` // 0-10
	ImprovementTip    string  `json:"improvementTip"`
	DetailedAnalysis  string  `json:"detailedAnalysis,omitempty"`
}

// UserProgress tracks the single user's completed sessions and derived tier.
// StreakDays is a simplification: set to 1 once any session completes, not a
// true consecutive-day streak.
type UserProgress struct {
	TotalSessions     int             `json:"totalSessions"`
	CurrentComplexity ComplexityLevel `json:"currentComplexity"`
	StreakDays        int             `json:"streakDays"`
	LastSessionDate   *time.Time      `json:"lastSessionDate,omitempty"`
}
