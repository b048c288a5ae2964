// Package semantic implements a named semantic-function registry: value
// objects identified by name, with a reduce operation that composes two
// semantics into one whose effective parse-time call is
// outer(inner(...)), cost summed and arity checked.
package semantic

import "github.com/pellham/nlgram/internal/gerr"

// Semantic is a named semantic function attached to a nonterminal rule.
// It carries no executable code here — evaluating semantics against a
// data store is out of scope; only its identity, cost, and arity
// participate in grammar compilation.
type Semantic struct {
	Name      string
	Cost      float64
	MinParams int
	MaxParams int
}

// New constructs a Semantic. It panics if minParams > maxParams or either
// is negative, since those are authoring bugs, not runtime conditions.
func New(name string, cost float64, minParams, maxParams int) Semantic {
	if minParams < 0 || maxParams < minParams {
		panic("semantic: minParams/maxParams out of range")
	}
	return Semantic{Name: name, Cost: cost, MinParams: minParams, MaxParams: maxParams}
}

// Reduce composes outer and inner into a single semantic whose name
// records the composition, whose cost is the sum of both, and whose
// arity is outer's (the inner semantic becomes one of outer's params).
// It returns an ArityMismatch error if inner cannot fit in one of
// outer's parameter slots, i.e. outer accepts zero params.
func Reduce(outer, inner Semantic) (Semantic, error) {
	if outer.MaxParams < 1 {
		return Semantic{}, gerr.New(gerr.ArityMismatch,
			"semantic %q accepts no parameters, cannot reduce with %q", outer.Name, inner.Name)
	}

	return Semantic{
		Name:      outer.Name + "(" + inner.Name + ")",
		Cost:      outer.Cost + inner.Cost,
		MinParams: outer.MinParams,
		MaxParams: outer.MaxParams,
	}, nil
}
