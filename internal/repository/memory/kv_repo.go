package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/e"
)

var _ usecase.KeyValueRepository = (*KVRepo)(nil)

// KVRepo keeps values in process memory. State is lost on restart.
type KVRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKVRepo() *KVRepo {
	return &KVRepo{data: make(map[string][]byte)}
}

func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, e.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
