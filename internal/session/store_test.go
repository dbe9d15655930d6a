package session

import (
	"fmt"
	"testing"
	"time"

	"fluentwork/models"
)

func testScenario(id string) *models.Scenario {
	return &models.Scenario{
		ID:              id,
		PrimaryTopic:    "weekly_progress",
		ComplexityLevel: models.ComplexityEasy,
		Context:         "You had a productive week.",
		InitialPrompt:   "Hi! How was your week?",
	}
}

func TestStorePutAndGet(t *testing.T) {
	store := NewStore(10)
	sess := New(testScenario("easy_1"), time.Now())
	store.Put(sess)

	got, ok := store.Get(sess.ID)
	if !ok {
		t.Fatalf("expected session %s to be found", sess.ID)
	}
	if got != sess {
		t.Errorf("expected same session instance back")
	}

	if _, ok := store.Get("unknown"); ok {
		t.Errorf("expected lookup of unknown id to fail")
	}
}

func TestStoreFIFOEviction(t *testing.T) {
	store := NewStore(100)

	var first *Session
	for i := 0; i < 100; i++ {
		sess := New(testScenario(fmt.Sprintf("easy_%d", i)), time.Now())
		if i == 0 {
			first = sess
		}
		store.Put(sess)
	}
	if store.Len() != 100 {
		t.Fatalf("expected 100 sessions stored, got %d", store.Len())
	}

	second := store.All()[1]

	// The 101st insert evicts exactly the first-inserted session
	store.Put(New(testScenario("overflow"), time.Now()))
	if store.Len() != 100 {
		t.Errorf("expected size to stay at 100, got %d", store.Len())
	}
	if _, ok := store.Get(first.ID); ok {
		t.Errorf("expected first-inserted session to be evicted")
	}
	if _, ok := store.Get(second.ID); !ok {
		t.Errorf("expected second-inserted session to survive eviction")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(10)
	sess := New(testScenario("easy_1"), time.Now())
	store.Put(sess)

	if !store.Delete(sess.ID) {
		t.Errorf("expected delete of existing session to report true")
	}
	if store.Delete(sess.ID) {
		t.Errorf("expected second delete to report false")
	}
	if _, ok := store.Get(sess.ID); ok {
		t.Errorf("expected deleted session to be gone")
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore(10)
	for i := 0; i < 5; i++ {
		store.Put(New(testScenario(fmt.Sprintf("s%d", i)), time.Now()))
	}
	store.Clear()
	if store.Len() != 0 {
		t.Errorf("expected empty store after clear, got %d", store.Len())
	}
	if len(store.All()) != 0 {
		t.Errorf("expected empty listing after clear")
	}
}

func TestEvictionOrderSurvivesDeletes(t *testing.T) {
	store := NewStore(3)
	a := New(testScenario("a"), time.Now())
	b := New(testScenario("b"), time.Now())
	c := New(testScenario("c"), time.Now())
	store.Put(a)
	store.Put(b)
	store.Put(c)

	store.Delete(b.ID)
	store.Put(New(testScenario("d"), time.Now()))
	store.Put(New(testScenario("e"), time.Now()))

	// a was the oldest remaining insert, so it goes first
	if _, ok := store.Get(a.ID); ok {
		t.Errorf("expected oldest-inserted session to be evicted after refill")
	}
	if _, ok := store.Get(c.ID); !ok {
		t.Errorf("expected newer session to survive")
	}
}
