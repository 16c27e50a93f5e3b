package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wildhunt/engine"
)

// holdTicks keeps a movement key active between terminal key repeats
const holdTicks = 8

type actionKind uint8

const (
	actNone actionKind = iota
	actMove
	actCast
	actNumber
	actTakeLoot
	actSpawn
	actToggleSpawn
	actPause
	actMetrics
	actAim
	actQuit
)

// action is one host command decoded from a terminal event
type action struct {
	kind   actionKind
	dx, dy int
	sprint bool
	index  int // ability index or 1-based number key
	x, y   int // mouse cell when aiming or clicking
	mouse  bool
}

var moveKeys = map[rune][2]int{
	'w': {0, -1},
	'a': {-1, 0},
	's': {0, 1},
	'd': {1, 0},
}

// translate decodes a terminal event into a host action
func translate(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			return action{kind: actCast, index: 0, x: x, y: y, mouse: true}
		}
		return action{kind: actAim, x: x, y: y}
	}
	return action{}
}

func translateKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action{kind: actQuit}
	case tcell.KeyUp:
		return action{kind: actMove, dy: -1, sprint: ev.Modifiers()&tcell.ModShift != 0}
	case tcell.KeyDown:
		return action{kind: actMove, dy: 1, sprint: ev.Modifiers()&tcell.ModShift != 0}
	case tcell.KeyLeft:
		return action{kind: actMove, dx: -1, sprint: ev.Modifiers()&tcell.ModShift != 0}
	case tcell.KeyRight:
		return action{kind: actMove, dx: 1, sprint: ev.Modifiers()&tcell.ModShift != 0}
	case tcell.KeyTab:
		return action{kind: actMetrics}
	case tcell.KeyRune:
	default:
		return action{}
	}

	r := ev.Rune()
	if dir, ok := moveKeys[r]; ok {
		return action{kind: actMove, dx: dir[0], dy: dir[1]}
	}
	if r >= 'A' && r <= 'Z' {
		if dir, ok := moveKeys[r-'A'+'a']; ok {
			return action{kind: actMove, dx: dir[0], dy: dir[1], sprint: true}
		}
	}
	if r >= '1' && r <= '9' {
		return action{kind: actNumber, index: int(r - '0')}
	}

	switch r {
	case ' ':
		return action{kind: actCast, index: 0}
	case 'e':
		return action{kind: actCast, index: 1}
	case 't':
		return action{kind: actTakeLoot}
	case 'n':
		return action{kind: actSpawn}
	case 'm':
		return action{kind: actToggleSpawn}
	case 'p':
		return action{kind: actPause}
	case 'q':
		return action{kind: actQuit}
	}
	return action{}
}

// moveState turns discrete key presses into a held movement intent
type moveState struct {
	dx, dy     int
	ttlX, ttlY int
	sprint     bool
}

// press refreshes the axes named by a move action
func (m *moveState) press(a action) {
	if a.dx != 0 {
		m.dx, m.ttlX = a.dx, holdTicks
	}
	if a.dy != 0 {
		m.dy, m.ttlY = a.dy, holdTicks
	}
	m.sprint = a.sprint
}

// next returns the intent for this tick and ages the held axes
func (m *moveState) next() engine.Input {
	in := engine.Input{Sprint: m.sprint}
	if m.ttlX > 0 {
		in.MoveX = float64(m.dx)
		m.ttlX--
	}
	if m.ttlY > 0 {
		in.MoveY = float64(m.dy)
		m.ttlY--
	}
	if m.ttlX == 0 && m.ttlY == 0 {
		m.sprint = false
	}
	return in
}
