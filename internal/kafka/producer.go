package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"

	"fraud-monitoring-system/internal/config"
	"fraud-monitoring-system/internal/models"
)

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka producer created successfully")
	return &ProducerImpl{
		producer: producer,
		topic:    cfg.Kafka.AlertTopic,
	}, nil
}

func (p *ProducerImpl) SendFraudAlert(event *models.FraudAlertEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Value:     sarama.StringEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Printf("Fraud alert sent to topic %s, partition %d, offset %d", p.topic, partition, offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
