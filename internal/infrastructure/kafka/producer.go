package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

var _ usecase.EventProducer = (*Producer)(nil)

// ActivityEvent is the JSON payload published for every change of shopper state.
type ActivityEvent struct {
	EventID        string `json:"event_id"`
	EventTimestamp int64  `json:"event_timestamp"`
	Type           string `json:"type"`
	ProductID      int64  `json:"product_id"`
	Quantity       int    `json:"quantity"`
}

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
	now    func() time.Time
	newID  func() string
}

// NewProducer builds an asynchronous writer. Delivery failures are only logged.
func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("kafka producer dropped %d event(s): %s", len(messages), err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (p *Producer) WriteEvent(ctx context.Context, event *usecase.StorefrontEvent) error {
	msg, err := p.message(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, msg)
}

// message keys events by product so that one product's history stays ordered.
func (p *Producer) message(event *usecase.StorefrontEvent) (kafka.Message, error) {
	value, err := json.Marshal(ActivityEvent{
		EventID:        p.newID(),
		EventTimestamp: p.now().UnixNano(),
		Type:           string(event.Type),
		ProductID:      event.ProductID,
		Quantity:       event.Quantity,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ProductID, 10)),
		Value: value,
	}, nil
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

// Close flushes pending messages.
func (p *Producer) Close(ctx context.Context) error {
	return p.writer.Close()
}
