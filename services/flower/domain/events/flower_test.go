package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/petalstore/services/flower/domain/events"
)

func TestTopics(t *testing.T) {
	if events.TopicFlowerCreated != "flower.created" {
		t.Errorf("expected %q, got %q", "flower.created", events.TopicFlowerCreated)
	}
	if events.TopicFlowerDeleted != "flower.deleted" {
		t.Errorf("expected %q, got %q", "flower.deleted", events.TopicFlowerDeleted)
	}
}

func TestFlowerCreatedEvent_JSONFieldNames(t *testing.T) {
	desc := "a test rose"
	evt := events.FlowerCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		FlowerID:    uuid.New(),
		Name:        "Rose",
		Color:       "red",
		Description: &desc,
		Price:       25000,
		Stock:       100,
		OccurredAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "flower_id", "name", "color", "description", "price", "stock", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestFlowerDeletedEvent_JSONFieldNames(t *testing.T) {
	evt := events.FlowerDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		FlowerID:   uuid.New(),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "flower_id", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}
