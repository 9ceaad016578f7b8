package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	log "github.com/sirupsen/logrus"
)

const kafkaFlushTimeoutMillis = 5000

type kafkaProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// KafkaNotifier produces notifications to a topic, keyed by burn tx hash or
// batch id so a record's transitions stay ordered within a partition.
type KafkaNotifier struct {
	producer kafkaProducer
	topic    string
}

func (k *KafkaNotifier) Publish(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("error encoding notification: %w", err)
	}

	key := n.BurnTxHash
	if key == "" {
		key = n.BatchID
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &k.topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Value:          data,
	}
	if err := k.producer.Produce(message, nil); err != nil {
		return fmt.Errorf("error producing to kafka topic %s: %w", k.topic, err)
	}
	return nil
}

func (k *KafkaNotifier) Close() {
	if remaining := k.producer.Flush(kafkaFlushTimeoutMillis); remaining > 0 {
		log.Warn("[NOTIFY] Kafka producer closed with ", remaining, " undelivered messages")
	}
	k.producer.Close()
}

func NewKafkaNotifier(brokers string, topic string) (*KafkaNotifier, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   brokers,
		"go.delivery.reports": false,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating kafka producer: %w", err)
	}
	log.Debug("[NOTIFY] Producing to kafka topic: ", topic)
	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
	}, nil
}
