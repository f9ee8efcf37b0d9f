package scroll

import "math"

// Store owns the scroll offset. Every mutation goes through SetOffset, which
// clamps to the valid range and reports a change only when the stored value
// actually moved.
type Store struct {
	offset  Offset
	limit   func(Axis) float64
	changed func(Axis)
}

// NewStore returns a store at offset zero. limit returns the largest valid
// offset for an axis; changed is called after every effective mutation.
func NewStore(limit func(Axis) float64, changed func(Axis)) *Store {
	return &Store{limit: limit, changed: changed}
}

// Offset returns the current offset.
func (s *Store) Offset() Offset {
	return s.offset
}

// SetOffset clamps raw into [0, limit(a)] and stores it. It returns true if
// the stored value changed.
func (s *Store) SetOffset(a Axis, raw float64) bool {
	if math.IsNaN(raw) {
		return false
	}
	v := min(max(raw, 0), max(s.limit(a), 0))
	if v == s.offset.Along(a) {
		return false
	}
	s.offset = s.offset.With(a, v)
	if s.changed != nil {
		s.changed(a)
	}
	return true
}

// Reclamp re-validates both axes against the current limits, for example
// after the content shrank. It returns true if either axis moved.
func (s *Store) Reclamp() bool {
	moved := false
	for _, a := range axes {
		if s.SetOffset(a, s.offset.Along(a)) {
			moved = true
		}
	}
	return moved
}

// reset puts the offset back to zero without signalling.
func (s *Store) reset() {
	s.offset = Offset{}
}
