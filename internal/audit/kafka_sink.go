package audit

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink publica os eventos de domínio num tópico.
type KafkaSink struct {
	writer *kafka.Writer
}

var _ Sink = (*KafkaSink)(nil)

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

type kafkaMessage struct {
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID *uint     `json:"entityId,omitempty"`
	UserID   *uint     `json:"userId,omitempty"`
	Metadata any       `json:"metadata,omitempty"`
	At       time.Time `json:"at"`
}

func encodeEvent(ev Event) (kafka.Message, error) {
	value, err := json.Marshal(kafkaMessage{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		UserID:   ev.UserID,
		Metadata: ev.Metadata,
		At:       ev.At,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	var key []byte
	if ev.EntityID != nil {
		key = []byte(ev.Entity + ":" + strconv.FormatUint(uint64(*ev.EntityID), 10))
	}

	return kafka.Message{
		Key:   key,
		Value: value,
		Time:  ev.At,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(ev.Action)},
		},
	}, nil
}

func (s *KafkaSink) Write(ctx context.Context, ev Event) error {
	msg, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, msg)
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
