package render

import (
	"github.com/lixenwraith/wildhunt/event"
)

// DescribeEvent turns a game event into a one-line HUD message
// Events without a player-facing message return false
func DescribeEvent(ev event.GameEvent, f *Formatter) (string, bool) {
	switch p := ev.Payload.(type) {
	case event.ClassSelectedPayload:
		return "You are now a " + p.Name, true
	case event.LevelUpPayload:
		return "Level " + f.Int(int64(p.Level)) + "! " + f.Int(int64(p.FreePoints)) + " free points", true
	case event.StatAllocatedPayload:
		return p.Stat.String() + " raised to " + f.Int(int64(p.Value)), true
	case event.EnemyKilledPayload:
		return "+" + f.Int(int64(p.XP)) + " xp", true
	case event.LootGainedPayload:
		return "Found " + p.Item.Name + " (" + p.Item.Rarity.String() + ")", true
	case event.PlayerDiedPayload:
		return "You died at level " + f.Int(int64(p.Level)), true
	}
	return "", false
}

// MessageLog keeps the most recent messages, oldest first
type MessageLog struct {
	lines []string
	limit int
}

func NewMessageLog(limit int) *MessageLog {
	if limit < 1 {
		limit = 1
	}
	return &MessageLog{limit: limit}
}

// Add appends msg and drops the oldest beyond the limit
func (l *MessageLog) Add(msg string) {
	l.lines = append(l.lines, msg)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns a copy of the retained messages
func (l *MessageLog) Lines() []string {
	return append([]string(nil), l.lines...)
}
