package usecase

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
)

// Favourites is the set of product ids the shopper marked.
// It is loaded once on construction and saved after every change.
type Favourites struct {
	mu      sync.RWMutex
	ids     map[int64]struct{}
	storage Storage[[]int64]
	key     string
	logger  logger.Logger
}

func NewFavourites(ctx context.Context, storage Storage[[]int64], key string, logger logger.Logger) *Favourites {
	f := &Favourites{
		ids:     make(map[int64]struct{}),
		storage: storage,
		key:     key,
		logger:  logger,
	}

	if stored, ok := storage.Load(ctx, key); ok {
		for _, id := range stored {
			f.ids[id] = struct{}{}
		}
	}

	return f
}

// Add reports whether id was not a favourite before.
func (f *Favourites) Add(ctx context.Context, id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.ids[id]; ok {
		return false
	}
	f.ids[id] = struct{}{}
	f.persist(ctx)
	return true
}

// Remove reports whether id was a favourite before.
func (f *Favourites) Remove(ctx context.Context, id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.ids[id]; !ok {
		return false
	}
	delete(f.ids, id)
	f.persist(ctx)
	return true
}

// Toggle flips membership of id and returns the new state.
func (f *Favourites) Toggle(ctx context.Context, id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, was := f.ids[id]
	if was {
		delete(f.ids, id)
	} else {
		f.ids[id] = struct{}{}
	}
	f.persist(ctx)
	return !was
}

func (f *Favourites) Contains(id int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.ids[id]
	return ok
}

// IDs returns the favourites in ascending order.
func (f *Favourites) IDs() []int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.sortedIDs()
}

// Set returns a snapshot copy safe to hand to the filter engine.
func (f *Favourites) Set() map[int64]struct{} {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return maps.Clone(f.ids)
}

func (f *Favourites) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// persist must be called with mu held.
func (f *Favourites) persist(ctx context.Context) {
	const op = "Favourites.persist"

	if err := f.storage.Save(ctx, f.key, f.sortedIDs()); err != nil {
		f.logger.Warnf("failed to persist favourites: %v", e.Wrap(op, err))
	}
}
