package editrules

import "github.com/pellham/nlgram/internal/grammar"

// insertableInfo holds, for every symbol that can derive a string
// consisting entirely of insertable terminals, the cheapest such
// derivation's total insertion cost and concatenated surface text.
type insertableInfo struct {
	cost map[string]float64
	text map[string]grammar.RuleText
}

func (info insertableInfo) has(symbol string) bool {
	_, ok := info.cost[symbol]
	return ok
}

// terminalInsertionCost reports whether a terminal rule is insertable --
// either because it carries an explicit InsertionCost, or because its
// sole terminal string is an authored deletable (cost 0).
func terminalInsertionCost(r *grammar.Rule, g *grammar.Grammar) (float64, bool) {
	if r.InsertionCost != nil {
		return *r.InsertionCost, true
	}
	if g.IsDeletable(r.RHS[0]) {
		return 0, true
	}
	return 0, false
}

// computeInsertable runs a least-fixed-point closure over every symbol's
// rules (authored and already-generated, e.g. nullable reductions) to
// find symbols that can derive an all-insertable string, tracking the
// cheapest such derivation's cost and text.
func computeInsertable(g *grammar.Grammar) insertableInfo {
	info := insertableInfo{cost: make(map[string]float64), text: make(map[string]grammar.RuleText)}

	changed := true
	for changed {
		changed = false
		for _, name := range g.SymbolNames() {
			for _, r := range g.Rules(name) {
				var candidateCost float64
				var candidateText grammar.RuleText
				var ok bool

				if r.Terminal {
					cost, insertable := terminalInsertionCost(r, g)
					if !insertable {
						continue
					}
					candidateCost, candidateText, ok = cost, *r.Text, true
				} else if len(r.RHS) == 1 {
					sib := r.RHS[0]
					if !info.has(sib) {
						continue
					}
					candidateCost, candidateText, ok = info.cost[sib], info.text[sib], true
				} else if len(r.RHS) == 2 {
					a, b := r.RHS[0], r.RHS[1]
					if !info.has(a) || !info.has(b) {
						continue
					}
					candidateCost = info.cost[a] + info.cost[b]
					candidateText = grammar.ConcatText(info.text[a], info.text[b])
					ok = true
				}

				if !ok {
					continue
				}
				if !info.has(name) || candidateCost < info.cost[name] {
					info.cost[name] = candidateCost
					info.text[name] = candidateText
					changed = true
				}
			}
		}
	}

	return info
}

// representativeText resolves a single canonical RuleText for a symbol
// when it unambiguously has one: exactly one terminal rule, or exactly
// one unary nonterminal rule chaining to a symbol with a representative
// text. Symbols with multiple rules or binary rules have no single
// representative surface text, so insertion text synthesis falls back to
// the bare symbol name as a placeholder for that side in that case.
func representativeText(g *grammar.Grammar, symbol string, visited map[string]bool) grammar.RuleText {
	if visited[symbol] {
		return grammar.TextLiteral(symbol)
	}
	visited[symbol] = true

	rules := g.Rules(symbol)
	if len(rules) == 1 {
		r := rules[0]
		if r.Terminal {
			return *r.Text
		}
		if len(r.RHS) == 1 {
			return representativeText(g, r.RHS[0], visited)
		}
	}
	return grammar.TextLiteral(symbol)
}

// hasInsertionRHS reports whether rules already contains a generated
// insertion rule with the given RHS, used to keep repeated Generate
// calls idempotent.
func hasInsertionRHS(rules []*grammar.Rule, rhs []string) bool {
	for _, r := range rules {
		if r.InsertionIdx != nil && hasRHSSequence([]*grammar.Rule{r}, rhs) {
			return true
		}
	}
	return false
}

// generateInsertions handles insertion derivation: for every authored
// binary rule X -> A B, if A (or B) can derive an all-insertable string,
// synthesize a unary rule X -> B (or X -> A) whose Text concatenates the
// dropped side's insertion text with the kept side's representative
// text, and whose cost is the original rule's cost plus the dropped
// side's insertion cost. The generator makes one pass over the rules
// captured before this function ran, so generated insertion rules are
// never themselves re-examined.
func generateInsertions(g *grammar.Grammar, info insertableInfo, sourceRules map[string][]*grammar.Rule) {
	for _, name := range g.SymbolNames() {
		for _, r := range sourceRules[name] {
			if r.Terminal || len(r.RHS) != 2 {
				continue
			}
			a, b := r.RHS[0], r.RHS[1]

			if info.has(a) && !hasInsertionRHS(g.Rules(name), []string{b}) {
				idx := 0
				text := grammar.ConcatText(info.text[a], representativeText(g, b, map[string]bool{}))
				derived := &grammar.Rule{
					RHS:          []string{b},
					Terminal:     false,
					Text:         &text,
					InsertionIdx: &idx,
					Cost:         r.Cost + info.cost[a],
				}
				g.AppendGeneratedRule(name, derived)
			}
			if info.has(b) && !hasInsertionRHS(g.Rules(name), []string{a}) {
				idx := 1
				text := grammar.ConcatText(representativeText(g, a, map[string]bool{}), info.text[b])
				derived := &grammar.Rule{
					RHS:          []string{a},
					Terminal:     false,
					Text:         &text,
					InsertionIdx: &idx,
					Cost:         r.Cost + info.cost[b],
				}
				g.AppendGeneratedRule(name, derived)
			}
		}
	}
}
