package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/juggernaut7777/kofa/internal/bot/model"
)

// MemoryStore keeps conversation state in a process-local map. Each user
// gets their own entry lock so turns for one user serialize without
// blocking turns for anyone else.
type MemoryStore struct {
	timeout time.Duration

	mu    sync.Mutex // guards users
	users map[string]*userEntry
}

type userEntry struct {
	mu    sync.Mutex
	state model.ConversationState
}

func NewMemoryStore(timeout time.Duration) *MemoryStore {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	return &MemoryStore{
		timeout: timeout,
		users:   map[string]*userEntry{},
	}
}

func (m *MemoryStore) entry(userID string) *userEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.users[userID]
	if !ok {
		e = &userEntry{}
		e.state.LastUpdated = time.Now()
		m.users[userID] = e
	}
	return e
}

func (m *MemoryStore) Do(_ context.Context, userID string, fn func(state *model.ConversationState) error) error {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Expired(m.timeout) {
		e.state.Reset()
	}
	return fn(&e.state)
}

func (m *MemoryStore) GetOrCreate(ctx context.Context, userID string) (model.ConversationState, error) {
	var snapshot model.ConversationState
	err := m.Do(ctx, userID, func(state *model.ConversationState) error {
		snapshot = state.Clone()
		return nil
	})
	return snapshot, err
}

func (m *MemoryStore) Clear(ctx context.Context, userID string) error {
	return m.Do(ctx, userID, func(state *model.ConversationState) error {
		state.Reset()
		return nil
	})
}

var _ Store = (*MemoryStore)(nil)
