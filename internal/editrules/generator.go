// Package editrules derives three families of edit rules from an
// authored grammar: empty-symbol elimination, transposition, and
// insertion. Generate runs once after authoring and before ambiguity
// detection, appending derived rules to the grammar's existing symbols
// in a single, deterministic pass.
package editrules

import "github.com/pellham/nlgram/internal/grammar"

// Generate enriches g in place with edit rules derived from its authored
// rule set. It must be called exactly once, after Builder.Compile and
// before ambiguity.Detect. Calling it again on an already-enriched
// grammar is idempotent for transpositions (duplicate orderings are
// suppressed) and a no-op for nullable/insertion reductions, since those
// are only derived from the snapshot of rules taken at the start of this
// call -- rules added by a prior Generate call are not binary source
// rules for a *second* pass in the relevant position unless they
// happen to also be authored-shaped, which edit rules never are.
func Generate(g *grammar.Grammar) {
	source := snapshotRules(g)

	nullable := computeNullable(g)
	eliminateEmpties(g, nullable, source)

	generateTranspositions(g, source)

	insertable := computeInsertable(g)
	generateInsertions(g, insertable, source)
}

// snapshotRules copies each symbol's current rule slice so the
// generation passes below can iterate a stable view while appending new
// rules to the live grammar.
func snapshotRules(g *grammar.Grammar) map[string][]*grammar.Rule {
	out := make(map[string][]*grammar.Rule)
	for _, name := range g.SymbolNames() {
		rules := g.Rules(name)
		cp := make([]*grammar.Rule, len(rules))
		copy(cp, rules)
		out[name] = cp
	}
	return out
}
