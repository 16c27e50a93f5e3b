package engine

import "sort"

// System is the lifecycle contract shared by every stateful system
type System interface {
	Name() string
	Priority() int
	// Init restores the system to its starting state
	Init()
}

// sortSystems orders systems by ascending priority, name breaking ties
func sortSystems(list []System) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Priority() != list[j].Priority() {
			return list[i].Priority() < list[j].Priority()
		}
		return list[i].Name() < list[j].Name()
	})
}
