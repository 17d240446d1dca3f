package kafka

import (
	"testing"
	"time"

	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerMessage(t *testing.T) {
	p := NewProducer(logger.NewNopLogger(), &cfg.KafkaCfg{
		Brokers: []string{"localhost:9092"},
		Topic:   "pokeshop-activity",
	})
	t.Cleanup(func() { _ = p.writer.Close() })

	p.now = func() time.Time { return time.Unix(0, 1700000000000000000) }
	p.newID = func() string { return "5f1b1c2e-7d2a-4a3b-9e55-2a1f0c7b9d10" }

	msg, err := p.message(usecase.NewStorefrontEvent(usecase.EventBagItemAdded, 4, 2))
	require.NoError(t, err)

	assert.Equal(t, "4", string(msg.Key))
	assert.JSONEq(t, `{
		"event_id": "5f1b1c2e-7d2a-4a3b-9e55-2a1f0c7b9d10",
		"event_timestamp": 1700000000000000000,
		"type": "bag_item_added",
		"product_id": 4,
		"quantity": 2
	}`, string(msg.Value))
}

func TestProducerWriterConfig(t *testing.T) {
	p := NewProducer(logger.NewNopLogger(), &cfg.KafkaCfg{
		Brokers: []string{"a:9092", "b:9092"},
		Topic:   "activity",
	})
	t.Cleanup(func() { _ = p.writer.Close() })

	assert.True(t, p.writer.Async)
	assert.Equal(t, "activity", p.writer.Topic)
}
