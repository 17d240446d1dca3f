package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/DRSN-tech/pokeshop/internal/usecase"
)

var errStorageDown = errors.New("storage down")

// failingKV fails every call.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error)  { return nil, errStorageDown }
func (failingKV) Set(context.Context, string, []byte) error    { return errStorageDown }
func (failingKV) Delete(context.Context, string) error         { return errStorageDown }

// recordingProducer keeps every event it is given.
type recordingProducer struct {
	mu     sync.Mutex
	events []usecase.StorefrontEvent
	err    error
}

func (p *recordingProducer) WriteEvent(_ context.Context, event *usecase.StorefrontEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
	return p.err
}

func (p *recordingProducer) types() []usecase.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]usecase.EventType, len(p.events))
	for i, ev := range p.events {
		res[i] = ev.Type
	}
	return res
}
