package domain

// Predicate is a compiled, reusable boolean test over entities. Predicates are
// stateless after compilation; a nil Predicate means "select all".
type Predicate func(*Entity) bool

// And yields a predicate satisfied when both operands are.
func (p Predicate) And(q Predicate) Predicate {
	return func(e *Entity) bool { return p(e) && q(e) }
}

// Or yields a predicate satisfied when either operand is.
func (p Predicate) Or(q Predicate) Predicate {
	return func(e *Entity) bool { return p(e) || q(e) }
}

// Not yields the negation.
func (p Predicate) Not() Predicate {
	return func(e *Entity) bool { return !p(e) }
}

// Select returns the entities of m satisfying p, in registration order.
// A nil predicate selects everything.
func (m *Model) Select(p Predicate) []*Entity {
	if p == nil {
		return m.Entities()
	}
	var out []*Entity
	for _, e := range m.entities {
		if p(e) {
			out = append(out, e)
		}
	}
	return out
}
