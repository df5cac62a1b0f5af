package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "student-registry"
	EventVersion = "1.0"

	DefaultTopic = "student-registry.events"
)

// Student lifecycle event types
const (
	EventStudentCreated = "student.created"
	EventStudentUpdated = "student.updated"
	EventStudentDeleted = "student.deleted"
)

// Event is the envelope published for every domain event
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// StudentEventData is the payload of student lifecycle events
type StudentEventData struct {
	StudentID    uint   `json:"student_id"`
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events to a message transport
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}
