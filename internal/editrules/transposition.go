package editrules

import "github.com/pellham/nlgram/internal/grammar"

// generateTranspositions handles transposition derivation: for every
// binary rule X -> A B carrying a TranspositionCost c, add a derived
// rule X -> B A with cost = original.cost + c and Transposition = true.
// Duplicate transpositions (an ordering that already exists, authored or
// previously generated) are suppressed, which is what makes repeated
// runs of the generator idempotent.
func generateTranspositions(g *grammar.Grammar, sourceRules map[string][]*grammar.Rule) {
	for _, name := range g.SymbolNames() {
		for _, r := range sourceRules[name] {
			if r.Terminal || len(r.RHS) != 2 || r.TranspositionCost == nil {
				continue
			}
			a, b := r.RHS[0], r.RHS[1]
			reversed := []string{b, a}

			if hasRHSSequence(g.Rules(name), reversed) {
				continue
			}

			derived := &grammar.Rule{
				RHS:           reversed,
				Terminal:      false,
				Semantic:      r.Semantic,
				Cost:          r.Cost + *r.TranspositionCost,
				Transposition: true,
			}
			g.AppendGeneratedRule(name, derived)
		}
	}
}

// hasRHSSequence reports whether any rule in rules has exactly the given
// ordered nonterminal RHS.
func hasRHSSequence(rules []*grammar.Rule, rhs []string) bool {
	for _, r := range rules {
		if r.Terminal || len(r.RHS) != len(rhs) {
			continue
		}
		match := true
		for i := range rhs {
			if r.RHS[i] != rhs[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
