// Package events publishes and consumes the farm service's domain events
// on Kafka. Events are JSON encoded and keyed by the affected record's ID.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gartstein/farm/internal/farm/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

type EventType string

const (
	MaterialCreated EventType = "material_created"
	MaterialUpdated EventType = "material_updated"
	MaterialDeleted EventType = "material_deleted"
	StockWithdrawn  EventType = "stock_withdrawn"
	StockRestocked  EventType = "stock_restocked"
	// StockAlert is emitted when a stock change leaves a material low or critical.
	StockAlert EventType = "stock_alert"

	SalaryCreated EventType = "salary_created"
	SalaryUpdated EventType = "salary_updated"
	SalaryDeleted EventType = "salary_deleted"
	SalaryPaid    EventType = "salary_paid"
)

type Event struct {
	Type       EventType
	Material   *models.Material      `json:",omitempty"`
	Movement   *models.StockMovement `json:",omitempty"`
	Salary     *models.Salary        `json:",omitempty"`
	OccurredAt time.Time
}

// Key returns the ID of the record the event is about.
func (e Event) Key() string {
	switch {
	case e.Material != nil:
		return e.Material.ID.String()
	case e.Salary != nil:
		return e.Salary.ID.String()
	default:
		return ""
	}
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
	done      chan struct{}
	onDrop    func()
}

const defaultQueueSize = 1000

func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	// Create topic if it doesn't exist
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.Hash{},
		Topic:    topic,
	}
	return newProducer(writer, logger, defaultQueueSize), nil
}

func newProducer(writer KafkaWriter, logger *zap.Logger, queueSize int) *Producer {
	p := &Producer{
		writer:    writer,
		events:    make(chan Event, queueSize),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
	}
	go p.eventLoop()
	return p
}

// OnDrop registers fn to be called for every event dropped on a full queue.
// It must be called before the producer is used.
func (p *Producer) OnDrop(fn func()) {
	p.onDrop = fn
}

// Produce enqueues an event without blocking. Events are dropped when the
// queue is full.
func (p *Producer) Produce(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	select {
	case p.events <- event:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(event.Type)),
			zap.String("key", event.Key()),
		)
		if p.onDrop != nil {
			p.onDrop()
		}
	}
}

func (p *Producer) eventLoop() {
	defer close(p.done)
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			p.drain()
			return
		}
	}
}

// drain sends whatever is still queued at shutdown.
func (p *Producer) drain() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		default:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("key", event.Key()),
		)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("key", event.Key()),
		)
		return
	}
}

// Close flushes queued events and closes the writer.
func (p *Producer) Close() {
	close(p.closeChan)
	<-p.done
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}
