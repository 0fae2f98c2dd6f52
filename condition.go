package bedazzle

// Predicate reports whether a state satisfies a condition.
type Predicate func(state State) bool

// And is satisfied when both p and another are.
func (p Predicate) And(another Predicate) Predicate {
	return All(p, another)
}

// Or is satisfied when p or another is.
func (p Predicate) Or(another Predicate) Predicate {
	return Any(p, another)
}

// Not is satisfied when p is not.
func (p Predicate) Not() Predicate {
	return Not(p)
}

// All is the conjunction of predicates. All() is always satisfied.
func All(predicates ...Predicate) Predicate {
	return func(state State) bool {
		for _, p := range predicates {
			if !p(state) {
				return false
			}
		}
		return true
	}
}

// Any is the disjunction of predicates. Any() is never satisfied.
func Any(predicates ...Predicate) Predicate {
	return func(state State) bool {
		for _, p := range predicates {
			if p(state) {
				return true
			}
		}
		return false
	}
}

// Not is satisfied when p is not.
func Not(p Predicate) Predicate {
	return func(state State) bool {
		return !p(state)
	}
}

// Has is satisfied when the state has an entry for key.
func Has(key string) Predicate {
	return func(state State) bool {
		_, ok := state[key]
		return ok
	}
}

// When applies d only when the accumulated state satisfies p.
func When(p Predicate, d Decorator) Decorator {
	if isNil(d) {
		return nil
	}
	return conditional{Predicate: p, Decorator: d}
}

// Unless applies d only when the accumulated state does not satisfy p.
func Unless(p Predicate, d Decorator) Decorator {
	return When(Not(p), d)
}

type conditional struct {
	Predicate Predicate
	Decorator Decorator
}

func (c conditional) Decorate(state State, recompose Recompose) (State, error) {
	if !c.Predicate(state) {
		return nil, nil
	}
	return c.Decorator.Decorate(state, recompose)
}

func (c conditional) Name() string {
	if n, ok := c.Decorator.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
