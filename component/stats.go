package component

import "strings"

// StatKind identifies one of the five base stats
type StatKind uint8

const (
	StatStr StatKind = iota
	StatDex
	StatPer
	StatMana
	StatVit
	StatCount // Sentinel for array sizing
)

var statNames = [StatCount]string{"str", "dex", "per", "mana", "vit"}

// String returns the short lowercase stat name
func (k StatKind) String() string {
	if k >= StatCount {
		return "unknown"
	}
	return statNames[k]
}

// ParseStatKind accepts the short names, case-insensitive
func ParseStatKind(s string) (StatKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range statNames {
		if s == name {
			return StatKind(i), true
		}
	}
	return 0, false
}

// Stats holds the five non-negative base stats
type Stats struct {
	Str  int
	Dex  int
	Per  int
	Mana int
	Vit  int
}

// Get returns the stat value for kind
func (s Stats) Get(kind StatKind) int {
	switch kind {
	case StatStr:
		return s.Str
	case StatDex:
		return s.Dex
	case StatPer:
		return s.Per
	case StatMana:
		return s.Mana
	case StatVit:
		return s.Vit
	}
	return 0
}

// Add raises kind by delta, flooring at zero
func (s *Stats) Add(kind StatKind, delta int) {
	var p *int
	switch kind {
	case StatStr:
		p = &s.Str
	case StatDex:
		p = &s.Dex
	case StatPer:
		p = &s.Per
	case StatMana:
		p = &s.Mana
	case StatVit:
		p = &s.Vit
	default:
		return
	}
	*p += delta
	if *p < 0 {
		*p = 0
	}
}
