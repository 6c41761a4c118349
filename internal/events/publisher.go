package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/adrisev99/automated-trading-bot-binance/internal/models"
)

// Publisher writes submitted-order events to a Kafka topic so downstream
// consumers (position aggregation, audit) can follow what the bot did.
// Optional wiring: without configured brokers the bot runs without it.
type Publisher struct {
	w *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      brokers,
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		Dialer:       dialer,
		BatchTimeout: 200 * time.Millisecond,
		RequiredAcks: int(kafka.RequireOne),
	})
	return &Publisher{w: w}
}

func (p *Publisher) Publish(ctx context.Context, ev models.OrderEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Symbol),
		Value: b,
		Time:  ev.TS,
	})
}

func (p *Publisher) Close() error { return p.w.Close() }
