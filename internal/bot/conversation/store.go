// Package conversation owns per-user dialogue state. All access goes
// through a Store: callers never hold the canonical state outside of a
// Do block, and concurrent turns for the same user are serialized by a
// per-user lock.
package conversation

import (
	"context"
	"time"

	"github.com/juggernaut7777/kofa/internal/bot/model"
)

// DefaultIdleTimeout is how long a conversation may sit untouched before
// lazy expiry resets it.
const DefaultIdleTimeout = 30 * time.Minute

// Store is the injected conversation-state abstraction. Expiry is checked
// lazily on every access; there is no background sweeper to race with
// in-flight turns.
type Store interface {
	// Do runs fn against the user's canonical state under that user's
	// lock, persisting any mutation fn makes. Expired state is reset
	// before fn sees it. An error from fn aborts persistence where the
	// backend supports it and is returned as-is.
	Do(ctx context.Context, userID string, fn func(state *model.ConversationState) error) error

	// GetOrCreate returns a snapshot of the user's state, creating an
	// empty one on first access and resetting it first when expired.
	GetOrCreate(ctx context.Context, userID string) (model.ConversationState, error)

	// Clear forcibly resets the user's state.
	Clear(ctx context.Context, userID string) error
}
