package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/dto"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

var KafkaConn *kafka.Conn

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	KafkaConn = conn
	return KafkaConn, nil
}

// MessageWriter is the part of *kafka.Conn the publisher needs.
type MessageWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

// EventPublisher sends domain events keyed by the contribution they
// concern. Writes go through the circuit breaker so a dead broker fails
// fast instead of stalling payment requests.
type EventPublisher struct {
	writer MessageWriter
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateEventPublisher(writer MessageWriter, cb *gobreaker.CircuitBreaker[[]byte]) *EventPublisher {
	return &EventPublisher{writer: writer, cb: cb}
}

func (p *EventPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	_, err = p.cb.Execute(func() ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, err := p.writer.WriteMessages(kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to write Kafka message: %w", err)
	}

	return nil
}
