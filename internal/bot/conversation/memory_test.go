package conversation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/juggernaut7777/kofa/internal/bot/model"
)

func twoProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Red Sneakers", PriceNGN: 5000, StockLevel: 3},
		{ID: "2", Name: "White Sneakers", PriceNGN: 6000, StockLevel: 1},
	}
}

func TestGetOrCreateIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	first, err := store.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	second, err := store.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Empty(t, second.LastProducts)
	require.Nil(t, second.CurrentProduct)
	require.False(t, second.AwaitingSelection)
}

func TestSetProductsInvariants(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	// Multiple results: awaiting selection, nothing in focus.
	err := store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts(), "sneakers")
		return nil
	})
	require.NoError(t, err)

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.True(t, state.AwaitingSelection)
	require.Len(t, state.LastProducts, 2)
	require.Nil(t, state.CurrentProduct)
	require.Equal(t, "sneakers", state.LastQuery)

	// Exactly one result: in focus, no selection pending.
	err = store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts()[:1], "red sneakers")
		return nil
	})
	require.NoError(t, err)

	state, err = store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.False(t, state.AwaitingSelection)
	require.NotNil(t, state.CurrentProduct)
	require.Equal(t, "1", state.CurrentProduct.ID)
}

func TestSelectProductClearsAwaiting(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	err := store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts(), "sneakers")
		s.SelectProduct(twoProducts()[1])
		return nil
	})
	require.NoError(t, err)

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.False(t, state.AwaitingSelection)
	require.NotNil(t, state.CurrentProduct)
	require.Equal(t, "2", state.CurrentProduct.ID)
}

func TestExpiryResetsState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	err := store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts(), "sneakers")
		s.LastUpdated = time.Now().Add(-31 * time.Minute)
		return nil
	})
	require.NoError(t, err)

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.Empty(t, state.LastProducts)
	require.Nil(t, state.CurrentProduct)
	require.False(t, state.AwaitingSelection)
	require.Empty(t, state.LastQuery)
}

func TestNotExpiredWithinTimeout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	err := store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts(), "sneakers")
		s.LastUpdated = time.Now().Add(-29 * time.Minute)
		return nil
	})
	require.NoError(t, err)

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.Len(t, state.LastProducts, 2)
	require.True(t, state.AwaitingSelection)
}

func TestClearResets(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	err := store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts(), "sneakers")
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx, "u"))

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.Empty(t, state.LastProducts)
	require.False(t, state.AwaitingSelection)
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	err := store.Do(ctx, "u", func(s *model.ConversationState) error {
		s.SetProducts(twoProducts(), "sneakers")
		return nil
	})
	require.NoError(t, err)

	snap, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	snap.LastProducts[0].Name = "mutated"
	snap.AwaitingSelection = false

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.Equal(t, "Red Sneakers", state.LastProducts[0].Name)
	require.True(t, state.AwaitingSelection)
}

func TestPerUserSerialization(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30 * time.Minute)

	const turns = 100
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Do(ctx, "u", func(s *model.ConversationState) error {
				// Read-modify-write that would corrupt under interleaving.
				n := len(s.LastProducts)
				s.LastProducts = append(s.LastProducts, model.Product{ID: "p"})
				if len(s.LastProducts) != n+1 {
					t.Error("interleaved mutation")
				}
				return nil
			})
		}()
	}
	wg.Wait()

	state, err := store.GetOrCreate(ctx, "u")
	require.NoError(t, err)
	require.Len(t, state.LastProducts, turns)
}
