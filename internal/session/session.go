package session

import (
	"sync"
	"time"

	"fluentwork/models"

	"github.com/google/uuid"
)

// Session owns one practice conversation: its scenario, append-only turn
// history, and active/ended state. The embedded mutex serializes concurrent
// operations on the same session; callers must hold it across a full
// submit-turn cycle so the exchange count and end test see a stable history.
type Session struct {
	sync.Mutex

	ID        string
	Scenario  *models.Scenario
	History   []models.Message
	StartTime time.Time
	IsActive  bool
}

// New creates an active session seeded with the scenario's opening line as
// the first MANAGER turn.
func New(scenario *models.Scenario, now time.Time) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Scenario:  scenario,
		StartTime: now,
		IsActive:  true,
	}
	s.History = append(s.History, models.Message{
		Role:      models.RoleManager,
		Content:   scenario.InitialPrompt,
		Timestamp: now,
	})
	return s
}

// Append adds one turn to the history. Caller must hold the session lock.
func (s *Session) Append(role models.MessageRole, content string, now time.Time) {
	s.History = append(s.History, models.Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
}

// ExchangeCount reports completed manager/user exchanges so far, measured
// against the current history. Caller must hold the session lock.
func (s *Session) ExchangeCount() int {
	return len(s.History) / 2
}

// End transitions the session to its terminal state. There is no transition
// back to active. Caller must hold the session lock.
func (s *Session) End() {
	s.IsActive = false
}

// UserMessages returns the contents of all USER turns in order.
// Caller must hold the session lock.
func (s *Session) UserMessages() []string {
	var out []string
	for _, msg := range s.History {
		if msg.Role == models.RoleUser {
			out = append(out, msg.Content)
		}
	}
	return out
}
