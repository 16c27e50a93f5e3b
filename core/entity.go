package core

// Entity is a unique identifier for enemies and projectiles
// Zero is reserved as "no entity"
type Entity uint64

// EntityAllocator hands out monotonically increasing ids
// Ids are never drawn from the random source so they do not perturb replay
type EntityAllocator struct {
	next Entity
}

func NewEntityAllocator() *EntityAllocator {
	return &EntityAllocator{next: 1}
}

// Next reserves a new entity id
func (a *EntityAllocator) Next() Entity {
	id := a.next
	a.next++
	return id
}

// Reset restarts allocation from 1
func (a *EntityAllocator) Reset() {
	a.next = 1
}
