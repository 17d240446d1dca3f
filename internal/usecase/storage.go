package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
)

// Storage is the port between state holders and persisted state.
// Load reports false when the value is missing or cannot be decoded.
type Storage[T any] interface {
	Load(ctx context.Context, key string) (T, bool)
	Save(ctx context.Context, key string, value T) error
}

// JSONStorage keeps JSON-encoded values in a KeyValueRepository.
type JSONStorage[T any] struct {
	repo    KeyValueRepository
	logger  logger.Logger
	timeout time.Duration
}

func NewJSONStorage[T any](repo KeyValueRepository, logger logger.Logger) *JSONStorage[T] {
	return &JSONStorage[T]{repo: repo, logger: logger}
}

// WithTimeout bounds every repository call. Zero disables the bound.
func (s *JSONStorage[T]) WithTimeout(d time.Duration) *JSONStorage[T] {
	s.timeout = d
	return s
}

func (s *JSONStorage[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Load never fails: read errors and corrupt content are logged and reported as absent.
func (s *JSONStorage[T]) Load(ctx context.Context, key string) (T, bool) {
	const op = "JSONStorage.Load"
	var zero T

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, e.ErrKeyNotFound) {
			s.logger.Warnf("failed to read %q, using empty default: %v", key, e.Wrap(op, err))
		}
		return zero, false
	}

	if len(data) == 0 {
		return zero, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warnf("ignoring malformed value under %q: %v", key, e.Wrap(op, err))
		return zero, false
	}

	return value, true
}

func (s *JSONStorage[T]) Save(ctx context.Context, key string, value T) error {
	const op = "JSONStorage.Save"

	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(op, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Set(ctx, key, data); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
