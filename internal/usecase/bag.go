package usecase

import (
	"context"
	"maps"
	"strconv"
	"sync"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
)

// Bag maps product ids to positive quantities. Absence means "not in the bag".
// It is loaded once on construction and saved after every change.
type Bag struct {
	mu      sync.RWMutex
	items   map[int64]int
	storage Storage[map[string]int]
	key     string
	logger  logger.Logger
}

func NewBag(ctx context.Context, storage Storage[map[string]int], key string, logger logger.Logger) *Bag {
	b := &Bag{
		items:   make(map[int64]int),
		storage: storage,
		key:     key,
		logger:  logger,
	}

	stored, ok := storage.Load(ctx, key)
	if !ok {
		return b
	}

	for rawID, qty := range stored {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 || qty <= 0 {
			logger.Debugf("dropping stored bag entry %q=%d", rawID, qty)
			continue
		}
		b.items[id] = qty
	}

	return b
}

// Increment adds one unit of id and returns the new quantity.
func (b *Bag) Increment(ctx context.Context, id int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items[id]++
	b.persist(ctx)
	return b.items[id]
}

// Decrement removes one unit of id and returns the new quantity.
// The entry is dropped when it reaches zero; absent ids are left alone.
func (b *Bag) Decrement(ctx context.Context, id int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	qty, ok := b.items[id]
	if !ok {
		return 0
	}

	qty--
	if qty <= 0 {
		delete(b.items, id)
		qty = 0
	} else {
		b.items[id] = qty
	}
	b.persist(ctx)
	return qty
}

// Clear empties the bag.
func (b *Bag) Clear(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = make(map[int64]int)
	b.persist(ctx)
}

func (b *Bag) Quantity(id int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.items[id]
}

func (b *Bag) Snapshot() map[int64]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return maps.Clone(b.items)
}

// persist must be called with mu held.
func (b *Bag) persist(ctx context.Context) {
	const op = "Bag.persist"

	stored := make(map[string]int, len(b.items))
	for id, qty := range b.items {
		stored[strconv.FormatInt(id, 10)] = qty
	}

	if err := b.storage.Save(ctx, b.key, stored); err != nil {
		b.logger.Warnf("failed to persist bag: %v", e.Wrap(op, err))
	}
}
