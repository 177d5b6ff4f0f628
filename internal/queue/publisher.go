package queue

import (
	"context"
	"encoding/json"

	"github.com/daralshefa/chatbot/backend/pkg/notify"

	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher mirrors persisted user events onto the events queue.
type EventPublisher struct {
	ch *amqp091.Channel
}

func NewEventPublisher(ch *amqp091.Channel) *EventPublisher {
	return &EventPublisher{
		ch: ch,
	}
}

// PublishEvent publishes the event's sheet payload shape, so queue consumers
// and the spreadsheet mirror see identical records.
func (p *EventPublisher) PublishEvent(ctx context.Context, event notify.Event) error {
	body, err := json.Marshal(event.SheetPayload())
	if err != nil {
		return err
	}
	return Publish(ctx, p.ch, EventsQueue, body)
}
