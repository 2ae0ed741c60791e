package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/core/errx"
	logx "github.com/juggernaut7777/kofa/pkg/logger"
)

// RedisStore persists conversation state as JSON with the idle timeout
// mapped onto the key TTL, so Redis itself enforces expiry between
// processes. Per-user serialization still happens through a local lock:
// a single bot process owns a given conversation at a time.
type RedisStore struct {
	rdb     redis.Cmdable
	timeout time.Duration

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

func NewRedisStore(rdb redis.Cmdable, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	return &RedisStore{
		rdb:     rdb,
		timeout: timeout,
		locks:   map[string]*sync.Mutex{},
	}
}

func (r *RedisStore) stateKey(userID string) string {
	return fmt.Sprintf("conversation:%s:state", userID)
}

func (r *RedisStore) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}

func (r *RedisStore) load(ctx context.Context, userID string) (model.ConversationState, error) {
	key := r.stateKey(userID)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		fresh := model.ConversationState{LastUpdated: time.Now()}
		return fresh, nil
	}
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to load conversation state from redis")
		return model.ConversationState{}, errx.WrapRedis(err)
	}

	var state model.ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// Corrupt payloads degrade to a fresh conversation rather than
		// poisoning every future turn for this user.
		logx.Warn().Err(err).Str("key", key).Msg("discarding undecodable conversation state")
		return model.ConversationState{LastUpdated: time.Now()}, nil
	}
	if state.Expired(r.timeout) {
		state.Reset()
	}
	return state, nil
}

func (r *RedisStore) persist(ctx context.Context, userID string, state *model.ConversationState) error {
	key := r.stateKey(userID)

	b, err := json.Marshal(state)
	if err != nil {
		logx.Error().Err(err).Str("userID", userID).Msg("failed to marshal conversation state")
		return fmt.Errorf("marshal conversation state: %w", err)
	}
	if err := r.rdb.Set(ctx, key, b, r.timeout).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write conversation state to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisStore) Do(ctx context.Context, userID string, fn func(state *model.ConversationState) error) error {
	l := r.userLock(userID)
	l.Lock()
	defer l.Unlock()

	state, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(&state); err != nil {
		return err
	}
	return r.persist(ctx, userID, &state)
}

func (r *RedisStore) GetOrCreate(ctx context.Context, userID string) (model.ConversationState, error) {
	var snapshot model.ConversationState
	err := r.Do(ctx, userID, func(state *model.ConversationState) error {
		snapshot = state.Clone()
		return nil
	})
	return snapshot, err
}

func (r *RedisStore) Clear(ctx context.Context, userID string) error {
	l := r.userLock(userID)
	l.Lock()
	defer l.Unlock()

	key := r.stateKey(userID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete conversation state from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
