// file: internals/events/publisher.go
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"silabku_backend/internals/configs"
)

// Publisher mengirim event domain (pengujian dibuat / status berubah) ke
// broker. Kegagalan publish tidak boleh menggagalkan operasi HTTP-nya.
type Publisher interface {
	Publish(topic, key string, payload any) error
	Close()
}

/* =========================
   Kafka (sarama SyncProducer)
   ========================= */

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(brokers []string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully.")
	return &KafkaPublisher{producer: producer}, nil
}

func (p *KafkaPublisher) Publish(topic, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(b),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("Failed to send message to Kafka topic '%s': %v", topic, err)
		return err
	}
	log.Printf("Message sent to topic '%s', partition %d, offset %d", topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() {
	if err := p.producer.Close(); err != nil {
		log.Printf("kafka producer close err: %v", err)
	}
}

/* =========================
   Fallback: log-only
   ========================= */

type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (p *LogPublisher) Publish(topic, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	log.Printf("[EVENT] topic=%s key=%s payload=%s", topic, key, b)
	return nil
}

func (p *LogPublisher) Close() {}

// FromEnv memilih publisher: Kafka jika KAFKA_BROKERS diset, selain itu
// log-only supaya service tetap jalan tanpa broker.
func FromEnv() Publisher {
	raw := strings.TrimSpace(configs.GetEnv("KAFKA_BROKERS"))
	if raw == "" {
		log.Println("KAFKA_BROKERS kosong, event pengujian hanya dicatat ke log.")
		return NewLogPublisher()
	}
	brokers := strings.Split(raw, ",")
	pub, err := NewKafkaPublisher(brokers)
	if err != nil {
		log.Printf("⚠️ Gagal konek Kafka (%v), fallback ke log publisher.", err)
		return NewLogPublisher()
	}
	return pub
}
