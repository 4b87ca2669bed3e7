package ecs

import "fmt"

// Entity is a handle: the low 32 bits index the entity table, the high 32
// bits hold the generation of that slot. A destroyed entity's handle stays
// invalid after its slot is reused. The zero Entity is never handed out.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// String renders the handle as "<id>v<generation>".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityStore is the entity table. Ids start at 1 and freed ids are reused
// last-in first-out.
type entityStore struct {
	gens []generation
	live []bool
	free []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.live[id-1] = true
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.live = append(s.live, true)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := e.id() - 1
	s.gens[slot]++
	s.live[slot] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.live[id-1] && s.gens[id-1] == e.generation()
}

func (s *entityStore) alive() []Entity {
	out := make([]Entity, 0, len(s.gens)-len(s.free))
	for i, ok := range s.live {
		if ok {
			out = append(out, makeEntity(entityID(i+1), s.gens[i]))
		}
	}
	return out
}
