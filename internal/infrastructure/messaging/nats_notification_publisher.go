package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

var ErrNotificationQueueFull = errors.New("notification queue full")

// streamPublisher is the part of jetstream.JetStream used for publishing.
type streamPublisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// NotificationPublisher buffers order notifications and publishes them to a
// JetStream subject from a single Run loop. Publish never waits for the broker.
type NotificationPublisher struct {
	js      streamPublisher
	subject string
	queue   chan entities.NotificationMessage
	log     *zap.Logger
}

var _ interfaces.INotificationPublisher = (*NotificationPublisher)(nil)

func NewNotificationPublisher(js streamPublisher, subject string, buffer int, log *zap.Logger) *NotificationPublisher {
	if buffer <= 0 {
		buffer = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationPublisher{
		js:      js,
		subject: subject,
		queue:   make(chan entities.NotificationMessage, buffer),
		log:     log,
	}
}

// Publish enqueues msg. It fails only when the buffer is full.
func (p *NotificationPublisher) Publish(_ context.Context, msg entities.NotificationMessage) error {
	select {
	case p.queue <- msg:
		return nil
	default:
		p.log.Warn("[notify][nats] queue full; dropping", zap.String("order_id", msg.OrderID), zap.String("subject", msg.Subject))
		return ErrNotificationQueueFull
	}
}

// Run publishes queued messages until ctx is done. Broker failures are logged and skipped.
func (p *NotificationPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-p.queue:
			if err := p.publish(ctx, msg); err != nil {
				p.log.Warn("[notify][nats] publish failed", zap.String("order_id", msg.OrderID), zap.String("email", msg.Email), zap.Error(err))
				continue
			}
			p.log.Info("[notify][nats] published", zap.String("order_id", msg.OrderID), zap.String("subject", msg.Subject))
		}
	}
}

func (p *NotificationPublisher) publish(ctx context.Context, msg entities.NotificationMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = p.js.Publish(ctx, p.subject, data, jetstream.WithMsgID(notificationMsgID(msg)))
	return err
}

// notificationMsgID is the JetStream dedup key. The subject tells the funder and
// supplier notices of one order apart even when both go to the same address.
func notificationMsgID(msg entities.NotificationMessage) string {
	return msg.OrderID + ":" + msg.Subject + ":" + msg.Email
}

// Connect dials NATS and returns a JetStream context over the connection.
func Connect(url string, log *zap.Logger) (*nats.Conn, jetstream.JetStream, error) {
	if log == nil {
		log = zap.NewNop()
	}
	nc, err := nats.Connect(url,
		nats.Name("settlement-service"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("[notify][nats] disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("[notify][nats] reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}
	return nc, js, nil
}

// EnsureNotificationStream creates the stream that captures the notification subject.
func EnsureNotificationStream(ctx context.Context, js jetstream.JetStream, stream, subject string) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       stream,
		Subjects:   []string{subject},
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     7 * 24 * time.Hour,
		Duplicates: 2 * time.Minute,
		Replicas:   1,
	})
	if err != nil {
		return fmt.Errorf("create notification stream: %w", err)
	}
	return nil
}

// DisabledPublisher is used when NATS is turned off; it only logs.
type DisabledPublisher struct {
	Log *zap.Logger
}

var _ interfaces.INotificationPublisher = DisabledPublisher{}

func (d DisabledPublisher) Publish(_ context.Context, msg entities.NotificationMessage) error {
	if d.Log != nil {
		d.Log.Info("[notify][disabled] notification skipped", zap.String("order_id", msg.OrderID), zap.String("subject", msg.Subject))
	}
	return nil
}
