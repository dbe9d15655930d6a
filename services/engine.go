package services

import (
	"context"
	"log"
	"strings"
	"time"

	"fluentwork/internal/session"
	"fluentwork/models"
)

// FallbackManagerReply is substituted whenever the dialogue generator fails.
// A failed generation never ends a session the user didn't finish.
const FallbackManagerReply = "I see. Can you tell me more about that?"

// surpriseWindowMin/Max bound the exchange counts (inclusive) during which a
// scenario's surprise element is injected into the generation request.
const (
	surpriseWindowMin = 2
	surpriseWindowMax = 4
	maxExchanges      = 6
)

// Engine drives the session lifecycle: creation, turn-taking, surprise
// injection and the end-of-session decision. All state lives in the injected
// store; the clock is injectable for tests.
type Engine struct {
	store              *session.Store
	generator          DialogueGenerator
	maxSessionDuration time.Duration
	now                func() time.Time
}

func NewEngine(store *session.Store, generator DialogueGenerator, maxSessionDuration time.Duration) *Engine {
	if maxSessionDuration <= 0 {
		maxSessionDuration = 300 * time.Second
	}
	return &Engine{
		store:              store,
		generator:          generator,
		maxSessionDuration: maxSessionDuration,
		now:                time.Now,
	}
}

// StartSession selects a scenario for the given progress state, creates an
// active session seeded with its opening line, and registers it in the store.
func (e *Engine) StartSession(progress models.UserProgress) (*session.Session, error) {
	scenario, err := SelectScenario(progress)
	if err != nil {
		return nil, err
	}
	sess := session.New(&scenario, e.now())
	e.store.Put(sess)
	return sess, nil
}

// SubmitUserTurn appends the user's utterance, asks the dialogue generator
// for the manager's reply, appends it, and reports whether this turn ended
// the session. The end test and the surprise window are both evaluated
// against the history before the reply is appended, so the call that crosses
// a threshold is also the one that carries the wrap-up reply.
func (e *Engine) SubmitUserTurn(ctx context.Context, sessionID, text string) (string, bool, error) {
	sess, ok := e.store.Get(sessionID)
	if !ok {
		return "", false, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	if !sess.IsActive {
		return "", false, ErrSessionInactive
	}

	now := e.now()
	sess.Append(models.RoleUser, text, now)

	exchangeCount := sess.ExchangeCount()

	generatorInput := text
	if e.needsSurprise(sess, exchangeCount) {
		generatorInput = text + "\n\nNow introduce this element naturally: " + sess.Scenario.SurpriseElement
	}

	shouldEnd := exchangeCount >= maxExchanges || now.Sub(sess.StartTime) >= e.maxSessionDuration

	reply, err := e.generator.NextManagerLine(ctx, GenerationRequest{
		Scenario:    sess.Scenario,
		History:     sess.History,
		UserMessage: generatorInput,
		ShouldEnd:   shouldEnd,
	})
	if err != nil {
		log.Printf("dialogue generation failed for session %s: %v", sess.ID, err)
		reply = FallbackManagerReply
		shouldEnd = false
	}

	sess.Append(models.RoleManager, reply, e.now())
	if shouldEnd {
		sess.End()
	}
	return reply, shouldEnd, nil
}

// needsSurprise reports whether this turn's generation request should carry
// the surprise-element instruction: the scenario has one, the exchange count
// is inside the injection window, and no prior MANAGER turn has mentioned it
// yet. Checked fresh on every call so the instruction is repeated until the
// generator actually introduces the element.
func (e *Engine) needsSurprise(sess *session.Session, exchangeCount int) bool {
	if sess.Scenario.SurpriseElement == "" {
		return false
	}
	if exchangeCount < surpriseWindowMin || exchangeCount > surpriseWindowMax {
		return false
	}
	return !surpriseIntroduced(sess)
}

// surpriseIntroduced checks whether any of the surprise element's leading
// keywords (its lowercase first three tokens) already appear in a MANAGER
// turn.
func surpriseIntroduced(sess *session.Session) bool {
	if sess.Scenario.SurpriseElement == "" {
		return false
	}
	keywords := strings.Fields(strings.ToLower(sess.Scenario.SurpriseElement))
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	for _, msg := range sess.History {
		if msg.Role != models.RoleManager {
			continue
		}
		content := strings.ToLower(msg.Content)
		for _, keyword := range keywords {
			if strings.Contains(content, keyword) {
				return true
			}
		}
	}
	return false
}

// Store exposes the session registry for the HTTP layer (lookups, deletes,
// the debug listing, and the reset flow).
func (e *Engine) Store() *session.Store {
	return e.store
}
