package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

func TestWatermillEventPublisher_PublishesJSONEnvelope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, DefaultTopic)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	publisher := NewWatermillEventPublisher(pubSub, "", logger)
	event := NewEvent(EventStudentCreated, StudentEventData{StudentID: 7, Name: "Ada"})

	done := make(chan error, 1)
	go func() { done <- publisher.Publish(ctx, event) }()

	select {
	case msg := <-messages:
		msg.Ack()

		if msg.UUID != event.ID {
			t.Errorf("message uuid: got %q want %q", msg.UUID, event.ID)
		}
		if got := msg.Metadata.Get("event_type"); got != EventStudentCreated {
			t.Errorf("event_type metadata: got %q", got)
		}

		var decoded struct {
			Type   string           `json:"type"`
			Source string           `json:"source"`
			Data   StudentEventData `json:"data"`
		}
		if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		if decoded.Type != EventStudentCreated || decoded.Source != EventSource {
			t.Errorf("unexpected envelope: %+v", decoded)
		}
		if decoded.Data.StudentID != 7 || decoded.Data.Name != "Ada" {
			t.Errorf("unexpected data: %+v", decoded.Data)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}

	if err := <-done; err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventStudentDeleted, nil)

	if event.ID == "" {
		t.Error("Event ID should not be empty")
	}
	if event.Source != EventSource {
		t.Errorf("Expected source '%s', got '%s'", EventSource, event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("Expected version '1.0', got '%s'", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("Event timestamp should not be zero")
	}
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(nil)

	_ = mock.Publish(context.Background(), NewEvent(EventStudentCreated, nil))
	_ = mock.Publish(context.Background(), NewEvent(EventStudentUpdated, nil))

	if got := len(mock.GetPublishedEvents()); got != 2 {
		t.Fatalf("Expected 2 events, got %d", got)
	}

	mock.ClearEvents()
	if got := len(mock.GetPublishedEvents()); got != 0 {
		t.Fatalf("Expected 0 events after clear, got %d", got)
	}
}
