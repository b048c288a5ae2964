// Package ambiguity implements a bounded-enumeration ambiguity detector:
// for every nonterminal with two or more authored rules, enumerate
// bounded leftmost derivations and report any pair that reaches the same
// fringe signature.
package ambiguity

import "github.com/pellham/nlgram/internal/grammar"

// frontier is a persistent singly-linked LIFO stack of deferred
// right-siblings from enclosing binary rules. Sibling paths share tails
// rather than copying.
type frontier struct {
	sym  string
	next *frontier
}

// chainNode is a persistent, prepend-only reverse linked list of the
// rules applied along a path, used to reconstruct its parse tree.
type chainNode struct {
	rule *grammar.Rule
	prev *chainNode
}

// Path is a partial leftmost derivation from a root rule of some
// nonterminal.
type Path struct {
	// Terminals is the terminal string produced so far, space-prefixed.
	Terminals string
	// NextSym is the leftmost frontier nonterminal to expand next, or
	// "" if the derivation is complete (no more symbols pending).
	NextSym string
	// Stack holds deferred right-siblings in LIFO order.
	Stack *frontier
	// SymsCount is the total number of symbols ever placed along this
	// path, bounding enumeration via the detector's symsLimit.
	SymsCount int
	chain     *chainNode
}

// expand applies rule r -- which must be one of the non-edit rules of
// p.NextSym (or, for a fresh root path, of the nonterminal being
// enumerated) -- and returns the resulting path. Terminal rules extend
// Terminals and pop a deferred sibling if one is available; unary
// nonterminal rules replace NextSym; binary nonterminal rules push their
// right sibling onto Stack.
func expand(p *Path, r *grammar.Rule) *Path {
	chain := &chainNode{rule: r, prev: p.chain}

	if r.Terminal {
		terminals := p.Terminals
		if !r.IsEmpty() {
			terminals += " " + r.Text.String()
		}
		nextSym, stack := "", p.Stack
		if p.Stack != nil {
			nextSym, stack = p.Stack.sym, p.Stack.next
		}
		return &Path{
			Terminals: terminals,
			NextSym:   nextSym,
			Stack:     stack,
			SymsCount: p.SymsCount + 1,
			chain:     chain,
		}
	}

	if len(r.RHS) == 1 {
		return &Path{
			Terminals: p.Terminals,
			NextSym:   r.RHS[0],
			Stack:     p.Stack,
			SymsCount: p.SymsCount + 1,
			chain:     chain,
		}
	}

	// binary
	return &Path{
		Terminals: p.Terminals,
		NextSym:   r.RHS[0],
		Stack:     &frontier{sym: r.RHS[1], next: p.Stack},
		SymsCount: p.SymsCount + 2,
		chain:     chain,
	}
}
