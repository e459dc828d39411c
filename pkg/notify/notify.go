package notify

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"

	"backend/pkg/mailer"
)

const topic = "notifications"

type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Queue decouples notification email from the request path: Publish never
// fails the caller, and a background consumer drains the topic. Losing a
// notification on crash is acceptable; failing a request over email is not.
type Queue struct {
	pubSub *gochannel.GoChannel
	log    *zap.Logger
}

func NewQueue(log *zap.Logger) *Queue {
	return &Queue{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NopLogger{}),
		log:    log,
	}
}

// Publish enqueues an email send; errors are logged and swallowed.
func (q *Queue) Publish(e Email) {
	payload, err := json.Marshal(e)
	if err != nil {
		q.log.Error("notify: marshal failed", zap.Error(err))
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := q.pubSub.Publish(topic, msg); err != nil {
		q.log.Error("notify: publish failed", zap.String("to", e.To), zap.Error(err))
	}
}

// Consume starts the background sender; it stops when ctx is cancelled.
func (q *Queue) Consume(ctx context.Context, sender mailer.Sender) error {
	messages, err := q.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var e Email
			if err := json.Unmarshal(msg.Payload, &e); err != nil {
				q.log.Error("notify: bad payload", zap.Error(err))
				msg.Ack() // drop poison messages
				continue
			}
			if err := sender.Send(e.To, e.Subject, e.Body); err != nil {
				// best-effort: log and move on, never retry into the request path
				q.log.Warn("notify: send failed", zap.String("to", e.To), zap.Error(err))
			} else {
				q.log.Info("notify: sent", zap.String("to", e.To), zap.String("subject", e.Subject))
			}
			msg.Ack()
		}
	}()

	return nil
}

func (q *Queue) Close() error {
	return q.pubSub.Close()
}
