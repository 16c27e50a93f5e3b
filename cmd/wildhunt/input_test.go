package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want action
	}{
		{"walk up", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), action{kind: actMove, dy: -1}},
		{"sprint right", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), action{kind: actMove, dx: 1, sprint: true}},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), action{kind: actMove, dx: -1}},
		{"secondary ability", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), action{kind: actCast, index: 1}},
		{"primary ability", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), action{kind: actCast, index: 0}},
		{"number", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), action{kind: actNumber, index: 3}},
		{"take loot", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), action{kind: actTakeLoot}},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), action{kind: actPause}},
		{"metrics", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), action{kind: actMetrics}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), action{kind: actQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), action{kind: actQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), action{}},
		{"click", tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone), action{kind: actCast, x: 12, y: 5, mouse: true}},
		{"hover", tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), action{kind: actAim, x: 3, y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.ev); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMoveStateHoldsAxes(t *testing.T) {
	var m moveState
	m.press(action{kind: actMove, dx: 1})
	m.press(action{kind: actMove, dy: -1, sprint: true})

	in := m.next()
	if in.MoveX != 1 || in.MoveY != -1 || !in.Sprint {
		t.Errorf("Expected combined sprint intent, got %+v", in)
	}

	for i := 1; i < holdTicks; i++ {
		m.next()
	}
	in = m.next()
	if in.MoveX != 0 || in.MoveY != 0 || in.Sprint {
		t.Errorf("Expected released intent after %d ticks, got %+v", holdTicks, in)
	}
}
