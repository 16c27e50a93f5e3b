package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/wildhunt/parameter"
)

// mockTime is a controllable TimeSource
type mockTime struct {
	mu  sync.Mutex
	now time.Time
}

func (m *mockTime) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *mockTime) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func TestClockStep(t *testing.T) {
	src := &mockTime{now: time.Unix(1000, 0)}
	c := NewClock(src)

	src.Advance(16 * time.Millisecond)
	if dt := c.Step(); dt < 0.0159 || dt > 0.0161 {
		t.Errorf("Expected ~0.016, got %v", dt)
	}

	src.Advance(2 * time.Second)
	if dt := c.Step(); dt != parameter.MaxTickDelta {
		t.Errorf("Expected capped delta %v, got %v", parameter.MaxTickDelta, dt)
	}
}

func TestClockPause(t *testing.T) {
	src := &mockTime{now: time.Unix(1000, 0)}
	c := NewClock(src)

	if !c.Toggle() {
		t.Fatal("Expected clock to be paused after toggle")
	}
	src.Advance(50 * time.Millisecond)
	if dt := c.Step(); dt != 0 {
		t.Errorf("Expected 0 while paused, got %v", dt)
	}

	src.Advance(time.Minute)
	c.Resume()
	src.Advance(10 * time.Millisecond)
	if dt := c.Step(); dt < 0.0099 || dt > 0.0101 {
		t.Errorf("Expected paused interval to be skipped, got %v", dt)
	}
}
