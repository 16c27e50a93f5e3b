package event

import (
	"testing"

	"github.com/lixenwraith/wildhunt/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventEnemySpawned, nil, 1)
	q.Emit(EventEnemyKilled, nil, 2)
	q.Emit(EventLootGained, nil, 2)

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}

	got := q.Consume()
	want := []EventType{EventEnemySpawned, EventEnemyKilled, EventLootGained}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], ev.Type)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Emit(EventPlayerDamaged, i, int64(i))
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if first := got[0].Payload.(int); first != 10 {
		t.Errorf("Expected oldest surviving payload 10, got %d", first)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventClassSelected, "ClassSelected"},
		{EventGameReset, "GameReset"},
		{EventType(-1), "Unknown"},
		{eventTypeCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
