package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
)

// Action names the change a GroupEvent describes.
type Action string

const (
	GroupCreated  Action = "group.created"
	GroupRenamed  Action = "group.renamed"
	GroupDeleted  Action = "group.deleted"
	MemberAdded   Action = "member.added"
	MemberRemoved Action = "member.removed"
)

// GroupEvent is published after every committed change to a group or its members.
type GroupEvent struct {
	EventID   uuid.UUID `json:"eventId"`
	Action    Action    `json:"action"`
	GroupID   int64     `json:"groupId"`
	UserID    int64     `json:"userId,omitempty"`
	Name      string    `json:"name,omitempty"`
	DateAdded time.Time `json:"dateAdded"`
	Timestamp int64     `json:"timestamp"`
}

// NewGroupEvent stamps an event with a fresh ID and the current time.
func NewGroupEvent(action Action, groupID int64) GroupEvent {
	return GroupEvent{
		EventID:   uuid.New(),
		Action:    action,
		GroupID:   groupID,
		Timestamp: time.Now().UTC().UnixMilli(),
	}
}

// Notifier publishes group events.
type Notifier interface {
	Notify(event GroupEvent) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{
		client:   client,
		producer: producer,
	}, nil
}

// Notify publishes an event keyed by group so that events for one group keep their order.
func (p *EventPublisher) Notify(event GroupEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
		Key:     strconv.FormatInt(event.GroupID, 10),
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}
	return nil
}

// Close closes the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}

// NopNotifier drops every event. It is used when no Pulsar URL is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(GroupEvent) error { return nil }
func (NopNotifier) Close()                  {}
