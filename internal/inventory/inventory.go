// Package inventory provides catalog snapshots to the bot. The dialogue
// engine treats every snapshot as fresh and consistent; it never caches
// catalog data beyond a single turn.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/core/errx"
)

// Provider is the catalog interface the rest of the system depends on.
type Provider interface {
	// ListProducts returns a snapshot of the full catalog.
	ListProducts(ctx context.Context) ([]model.Product, error)
	// UpdateStock adjusts a product's stock by delta (negative to sell).
	UpdateStock(ctx context.Context, productID string, delta int) error
}

// MemoryInventory is a mutex-guarded in-memory catalog, seeded at startup.
type MemoryInventory struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewMemoryInventory(seed []model.Product) *MemoryInventory {
	products := make([]model.Product, len(seed))
	copy(products, seed)
	return &MemoryInventory{products: products}
}

func (m *MemoryInventory) ListProducts(_ context.Context) ([]model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryInventory) UpdateStock(_ context.Context, productID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID != productID {
			continue
		}
		next := m.products[i].StockLevel + delta
		if next < 0 {
			next = 0
		}
		m.products[i].StockLevel = next
		return nil
	}
	return fmt.Errorf("update stock for %s: %w", productID, errx.ErrNoMatch)
}

// AddProduct appends a new product to the catalog.
func (m *MemoryInventory) AddProduct(p model.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, p)
}

var _ Provider = (*MemoryInventory)(nil)
