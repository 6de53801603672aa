package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cristiano1098/socializeAPP/db"
	"github.com/cristiano1098/socializeAPP/models"
)

type EventConsumer struct {
	client   pulsar.Client
	consumer pulsar.Consumer
}

// NewEventConsumer initializes the Pulsar client and consumer.
func NewEventConsumer(pulsarURL, topic, subscription string) (*EventConsumer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{URL: pulsarURL})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	consumer, err := client.Subscribe(pulsar.ConsumerOptions{
		Topic:            topic,
		SubscriptionName: subscription,
		Type:             pulsar.KeyShared,
		DLQ: &pulsar.DLQPolicy{
			MaxDeliveries:   3,
			DeadLetterTopic: topic + "-dlq",
		},
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar consumer: %w", err)
	}

	return &EventConsumer{client: client, consumer: consumer}, nil
}

// ReceiveMessage retrieves a message from Pulsar.
func (c *EventConsumer) ReceiveMessage(ctx context.Context) (pulsar.Message, error) {
	msg, err := c.consumer.Receive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to receive message: %w", err)
	}
	return msg, nil
}

// Ack acknowledges a message.
func (c *EventConsumer) Ack(msg pulsar.Message) {
	c.consumer.Ack(msg)
}

// Nack negatively acknowledges a message.
func (c *EventConsumer) Nack(msg pulsar.Message) {
	c.consumer.Nack(msg)
}

// Close cleans up the Pulsar consumer and client.
func (c *EventConsumer) Close() {
	c.consumer.Close()
	c.client.Close()
}

// ErrUnknownAction is returned by Apply for events it cannot replay.
var ErrUnknownAction = errors.New("unknown event action")

// Store is the part of the database a replayed event writes to.
type Store interface {
	SaveGroup(ctx context.Context, group models.Group) error
	DeleteGroup(ctx context.Context, groupID int64) error
	AddMembers(ctx context.Context, groupID int64, userIDs ...int64) error
	RemoveMember(ctx context.Context, groupID, userID int64) error
}

// DecodeGroupEvent parses a message payload.
func DecodeGroupEvent(payload []byte) (GroupEvent, error) {
	var event GroupEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return GroupEvent{}, fmt.Errorf("could not decode event payload: %w", err)
	}
	return event, nil
}

// Apply replays an event into the store. Replaying an event twice leaves the
// store as replaying it once: deletes of rows that are already gone succeed.
func Apply(ctx context.Context, store Store, event GroupEvent) error {
	var err error
	switch event.Action {
	case GroupCreated, GroupRenamed:
		dateAdded := event.DateAdded
		if dateAdded.IsZero() {
			dateAdded = time.UnixMilli(event.Timestamp).UTC()
		}
		err = store.SaveGroup(ctx, models.Group{GroupID: event.GroupID, Name: event.Name, DateAdded: dateAdded})
	case GroupDeleted:
		err = store.DeleteGroup(ctx, event.GroupID)
	case MemberAdded:
		err = store.AddMembers(ctx, event.GroupID, event.UserID)
	case MemberRemoved:
		err = store.RemoveMember(ctx, event.GroupID, event.UserID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, event.Action)
	}

	if err != nil && !(errors.Is(err, db.ErrNotFound) && isRemoval(event.Action)) {
		return fmt.Errorf("error applying %s for group %d: %w", event.Action, event.GroupID, err)
	}
	return nil
}

func isRemoval(action Action) bool {
	return action == GroupDeleted || action == MemberRemoved
}
