package flappy

// SlotID identifies an obstacle slot. It is stable across recycling.
type SlotID int

// PassedSet records which slots have been credited in their current lifetime.
type PassedSet struct {
	marks []bool
}

func newPassedSet(slots int) PassedSet {
	return PassedSet{marks: make([]bool, slots)}
}

// Add marks the slot as passed. It reports false if it was already marked.
func (s *PassedSet) Add(id SlotID) bool {
	if !s.valid(id) || s.marks[id] {
		return false
	}
	s.marks[id] = true
	return true
}

// Remove clears the slot so it can be credited again.
func (s *PassedSet) Remove(id SlotID) {
	if s.valid(id) {
		s.marks[id] = false
	}
}

// Has reports whether the slot has been credited.
func (s PassedSet) Has(id SlotID) bool {
	return s.valid(id) && s.marks[id]
}

// Len returns the number of credited slots.
func (s PassedSet) Len() int {
	n := 0
	for _, m := range s.marks {
		if m {
			n++
		}
	}
	return n
}

// Slots returns the credited slots in ascending order.
func (s PassedSet) Slots() []SlotID {
	out := make([]SlotID, 0, len(s.marks))
	for i, m := range s.marks {
		if m {
			out = append(out, SlotID(i))
		}
	}
	return out
}

// Clear forgets every credited slot.
func (s *PassedSet) Clear() {
	for i := range s.marks {
		s.marks[i] = false
	}
}

func (s PassedSet) valid(id SlotID) bool {
	return id >= 0 && int(id) < len(s.marks)
}
