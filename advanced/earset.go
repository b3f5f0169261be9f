package advanced

// An insertion ordered set of ring slots. It is an intrusive doubly linked
// list over slot numbers, so adding, removing and popping either end are all
// O(1), and iteration order is stable. Adding a slot that is already present
// leaves it where it is.
type earSet struct {
	prev, next []int
	member     []bool
	head, tail int
	size       int
}

func newEarSet(capacity int) *earSet {
	return &earSet{
		prev:   make([]int, capacity),
		next:   make([]int, capacity),
		member: make([]bool, capacity),
		head:   -1,
		tail:   -1,
	}
}

func (s *earSet) Len() int {
	return s.size
}

func (s *earSet) Contains(slot int) bool {
	return s.member[slot]
}

func (s *earSet) Add(slot int) {
	if s.member[slot] {
		return
	}
	s.member[slot] = true
	s.prev[slot] = s.tail
	s.next[slot] = -1
	if s.tail >= 0 {
		s.next[s.tail] = slot
	} else {
		s.head = slot
	}
	s.tail = slot
	s.size++
}

func (s *earSet) Remove(slot int) {
	if !s.member[slot] {
		return
	}
	prev, next := s.prev[slot], s.next[slot]
	if prev >= 0 {
		s.next[prev] = next
	} else {
		s.head = next
	}
	if next >= 0 {
		s.prev[next] = prev
	} else {
		s.tail = prev
	}
	s.member[slot] = false
	s.size--
}

// First slot in insertion order, or -1 when empty.
func (s *earSet) First() int {
	return s.head
}

// Last slot in insertion order, or -1 when empty.
func (s *earSet) Last() int {
	return s.tail
}

// The slot after the given one, or -1 at the end.
func (s *earSet) Next(slot int) int {
	return s.next[slot]
}
