package usecase

import "context"

type EventProducer interface {
	WriteEvent(ctx context.Context, event *StorefrontEvent) error
}

// NopProducer drops every event. Used when no broker is configured.
type NopProducer struct{}

func (NopProducer) WriteEvent(context.Context, *StorefrontEvent) error { return nil }
