package session

import (
	"testing"
	"time"

	"fluentwork/models"
)

func TestNewSessionSeedsOpeningTurn(t *testing.T) {
	scenario := testScenario("easy_1")
	now := time.Now()
	sess := New(scenario, now)

	if sess.ID == "" {
		t.Errorf("expected a generated session id")
	}
	if !sess.IsActive {
		t.Errorf("expected a fresh session to be active")
	}
	if len(sess.History) != 1 {
		t.Fatalf("expected exactly one seeded turn, got %d", len(sess.History))
	}
	opening := sess.History[0]
	if opening.Role != models.RoleManager {
		t.Errorf("expected opening turn to be manager-authored, got %s", opening.Role)
	}
	if opening.Content != scenario.InitialPrompt {
		t.Errorf("expected opening turn to equal the scenario's initial prompt, got %q", opening.Content)
	}
	if !opening.Timestamp.Equal(now) {
		t.Errorf("expected opening turn timestamp to match session creation time")
	}
}

func TestExchangeCount(t *testing.T) {
	sess := New(testScenario("easy_1"), time.Now())

	if got := sess.ExchangeCount(); got != 0 {
		t.Errorf("expected 0 exchanges after seeding, got %d", got)
	}

	sess.Append(models.RoleUser, "I finished the dashboard.", time.Now())
	if got := sess.ExchangeCount(); got != 1 {
		t.Errorf("expected 1 exchange after first user turn, got %d", got)
	}

	sess.Append(models.RoleManager, "Nice. What's next?", time.Now())
	if got := sess.ExchangeCount(); got != 1 {
		t.Errorf("expected still 1 exchange after manager reply, got %d", got)
	}
}

func TestUserMessages(t *testing.T) {
	sess := New(testScenario("easy_1"), time.Now())
	sess.Append(models.RoleUser, "first", time.Now())
	sess.Append(models.RoleManager, "ok", time.Now())
	sess.Append(models.RoleUser, "second", time.Now())

	got := sess.UserMessages()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("unexpected user messages: %v", got)
	}
}
