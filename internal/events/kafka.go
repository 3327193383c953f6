package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-faster/errors"
	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
)

// Kafka publishes order events with one writer per topic, keyed by order id
// so all events of one order land on the same partition in order.
type Kafka struct {
	created *kafkaGo.Writer
	status  *kafkaGo.Writer
}

func NewKafka(brokers []string) *Kafka {
	return &Kafka{
		created: newWriter(brokers, TopicOrderCreated),
		status:  newWriter(brokers, TopicOrderStatus),
	}
}

func newWriter(brokers []string, topic string) *kafkaGo.Writer {
	return &kafkaGo.Writer{
		Addr:     kafkaGo.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafkaGo.LeastBytes{},
	}
}

func (k *Kafka) OrderCreated(ctx context.Context, o order.Order) error {
	return publishJSON(ctx, k.created, o.ID, OrderCreated{Order: o})
}

func (k *Kafka) OrderStatusChanged(ctx context.Context, o order.Order, previous string) error {
	return publishJSON(ctx, k.status, o.ID, OrderStatusChanged{
		OrderID:  o.ID,
		Code:     o.Code,
		Previous: previous,
		Status:   o.Status,
	})
}

func (k *Kafka) Close() error {
	if err := k.created.Close(); err != nil {
		return err
	}
	return k.status.Close()
}

func publishJSON(ctx context.Context, w *kafkaGo.Writer, orderID int64, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	return w.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(strconv.FormatInt(orderID, 10)),
		Value: payload,
	})
}
