package editrules

import "github.com/pellham/nlgram/internal/grammar"

// nullableInfo holds the least-fixed-point nullable set and, for each
// nullable symbol, the cost of its cheapest derivation to the empty
// string.
type nullableInfo struct {
	nullable map[string]bool
	cheapest map[string]float64
}

// computeNullable runs a least-fixed-point iteration: a nonterminal is
// nullable if it has an explicit epsilon terminal rule, a unary rule to
// an already-nullable symbol, or a binary rule whose both siblings are
// already nullable. Only the rules present on g at call time participate
// -- this must run before any other edit rules are appended, so the
// fixed point is taken over the authored grammar alone.
func computeNullable(g *grammar.Grammar) nullableInfo {
	info := nullableInfo{
		nullable: make(map[string]bool),
		cheapest: make(map[string]float64),
	}

	changed := true
	for changed {
		changed = false
		for _, name := range g.SymbolNames() {
			for _, r := range g.Rules(name) {
				if r.Terminal {
					if !r.IsEmpty() {
						continue
					}
					if !info.nullable[name] || r.Cost < info.cheapest[name] {
						info.nullable[name] = true
						info.cheapest[name] = r.Cost
						changed = true
					}
					continue
				}
				var candidate float64
				switch len(r.RHS) {
				case 1:
					sib := r.RHS[0]
					if !info.nullable[sib] {
						continue
					}
					candidate = r.Cost + info.cheapest[sib]
				case 2:
					a, b := r.RHS[0], r.RHS[1]
					if !info.nullable[a] || !info.nullable[b] {
						continue
					}
					candidate = r.Cost + info.cheapest[a] + info.cheapest[b]
				default:
					continue
				}
				if !info.nullable[name] || candidate < info.cheapest[name] {
					info.nullable[name] = true
					info.cheapest[name] = candidate
					changed = true
				}
			}
		}
	}

	return info
}

// eliminateEmpties handles the binary-rule reduction: for every
// authored binary rule X -> A B where A or B is nullable, add
// a derived unary rule X -> (the non-nullable sibling) whose cost is the
// original rule's cost plus the nullable side's cheapest epsilon-cost.
// If both sides are nullable, both reductions are added.
func eliminateEmpties(g *grammar.Grammar, info nullableInfo, sourceRules map[string][]*grammar.Rule) {
	for _, name := range g.SymbolNames() {
		for _, r := range sourceRules[name] {
			if r.Terminal || len(r.RHS) != 2 {
				continue
			}
			a, b := r.RHS[0], r.RHS[1]

			if info.nullable[a] && !hasRHSSequence(g.Rules(name), []string{b}) {
				derived := &grammar.Rule{
					RHS:      []string{b},
					Terminal: false,
					Semantic: r.Semantic,
					Cost:     r.Cost + info.cheapest[a],
				}
				g.AppendGeneratedRule(name, derived)
			}
			if info.nullable[b] && !hasRHSSequence(g.Rules(name), []string{a}) {
				derived := &grammar.Rule{
					RHS:      []string{a},
					Terminal: false,
					Semantic: r.Semantic,
					Cost:     r.Cost + info.cheapest[b],
				}
				g.AppendGeneratedRule(name, derived)
			}
		}
	}
}
