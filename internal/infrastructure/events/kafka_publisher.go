package events

import (
	"context"
	"encoding/json"
	"time"

	"topup_store/internal/domain/entities"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 3 * time.Second

// Envelope is the JSON value of every order event message.
type Envelope struct {
	EventID    string         `json:"event_id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Order      entities.Order `json:"order"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events keyed by ref_id so one order stays on one partition.
type KafkaPublisher struct {
	w   messageWriter
	now func() time.Time
}

var _ interfaces.IOrderEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: publishTimeout,
	})
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w, now: time.Now}
}

// Publish never returns an error; failures are logged and dropped.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, o entities.Order) {
	log := logger.L()
	env := Envelope{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Order:      o,
	}
	value, err := json.Marshal(env)
	if err != nil {
		log.Errorf("[events][kafka] marshal failed type=%s ref_id=%s err=%v", eventType, o.RefID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(o.RefID),
		Value:   value,
		Time:    env.OccurredAt,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(eventType)}},
	})
	if err != nil {
		log.Warnf("[events][kafka] publish failed type=%s ref_id=%s err=%v", eventType, o.RefID, err)
		return
	}
	log.Debugf("[events][kafka] published type=%s ref_id=%s event_id=%s", eventType, o.RefID, env.EventID)
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

var _ interfaces.IOrderEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(_ context.Context, eventType string, o entities.Order) {
	logger.L().Debugf("[events][noop] type=%s ref_id=%s", eventType, o.RefID)
}
