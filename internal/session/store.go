package session

import "sync"

// DefaultCapacity bounds how many sessions are kept in memory at once
const DefaultCapacity = 100

// Store is a bounded in-memory registry of active sessions. Insertion order
// is tracked so that when the capacity is exceeded the oldest-inserted
// session is evicted (pure FIFO by creation, not LRU).
type Store struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	sessions map[string]*Session
}

// NewStore creates a Store with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		sessions: make(map[string]*Session),
	}
}

// Put registers a session, evicting the oldest-inserted one if the store is
// over capacity.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[s.ID]; !exists {
		st.order = append(st.order, s.ID)
	}
	st.sessions[s.ID] = s

	for len(st.order) > st.capacity {
		oldest := st.order[0]
		st.order = st.order[1:]
		delete(st.sessions, oldest)
	}
}

// Get looks up a session by id. The second return value reports whether it
// was found (false for unknown or already-evicted ids).
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session by id and reports whether it was present.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	for i, existing := range st.order {
		if existing == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear drops every stored session.
func (st *Store) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.order = nil
	st.sessions = make(map[string]*Session)
}

// Len reports how many sessions are currently stored.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// All returns the stored sessions in insertion order.
func (st *Store) All() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*Session, 0, len(st.order))
	for _, id := range st.order {
		if s, ok := st.sessions[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
