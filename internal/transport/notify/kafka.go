// Package notify доставляет уведомления пользователям. Сообщения публикуются в топик Kafka,
// который читает шлюз мессенджера.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultTopic = "gigmarket.notifications"

// Message формат сообщения в топике.
type Message struct {
	ID            string    `json:"id"`
	RecipientID   int64     `json:"recipient_id"`
	Text          string    `json:"text"`
	AttachmentRef string    `json:"attachment_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

func NewKafkaNotifier(producer sarama.SyncProducer, topic string) *KafkaNotifier {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaNotifier{producer: producer, topic: topic, now: time.Now}
}

// NewSyncProducer создает продюсера, дожидающегося подтверждения всех реплик.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}
	return producer, nil
}

// Notify публикует уведомление. Ключ сообщения ID получателя, поэтому уведомления одного пользователя
// попадают в одну партицию и читаются по порядку.
func (k *KafkaNotifier) Notify(_ context.Context, n domain.Notification) error {
	payload, err := json.Marshal(Message{
		ID:            uuid.NewString(),
		RecipientID:   n.RecipientID,
		Text:          n.Text,
		AttachmentRef: n.AttachmentRef,
		CreatedAt:     k.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(n.RecipientID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publishing notification: %w", err)
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.producer.Close() //nolint:wrapcheck
}

// LogNotifier пишет уведомления в лог. Используется, когда брокеры не настроены.
type LogNotifier struct {
	l *logrus.Entry
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{l: l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "log",
	})}
}

func (n *LogNotifier) Notify(_ context.Context, msg domain.Notification) error {
	n.l.WithFields(logrus.Fields{
		"recipient":  msg.RecipientID,
		"attachment": msg.AttachmentRef,
	}).Info(msg.Text)
	return nil
}
