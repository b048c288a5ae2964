package grammar

// Grammar is the sealed, compiled grammar store: a mapping from symbol
// name to its rule list, a start symbol, the empty-terminal marker, and
// the deletables set. It is mutated only by the edit-rule generator's
// single enrichment pass after Builder.Compile; the ambiguity detector
// treats it strictly as read-only.
type Grammar struct {
	symbols    map[string]*Symbol
	order      []string
	start      string
	deletables map[string]bool
}

// Start returns the designated start symbol's name.
func (g *Grammar) Start() string {
	return g.start
}

// IsDeletable reports whether a terminal string is an authored deletable,
// eligible for elision by the insertion-rule generator.
func (g *Grammar) IsDeletable(terminal string) bool {
	return g.deletables[terminal]
}

// DeletableSet returns the set of deletable terminal strings.
func (g *Grammar) DeletableSet() map[string]bool {
	return g.deletables
}

// Symbol returns the named symbol and whether it exists.
func (g *Grammar) Symbol(name string) (*Symbol, bool) {
	s, ok := g.symbols[name]
	return s, ok
}

// SymbolNames returns every symbol name in authoring order.
func (g *Grammar) SymbolNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Rules returns the rule list of the named symbol, or nil if it doesn't
// exist.
func (g *Grammar) Rules(name string) []*Rule {
	s, ok := g.symbols[name]
	if !ok {
		return nil
	}
	return s.Rules
}

// AppendGeneratedRule appends a rule produced by the edit-rule generator
// to the named symbol's rule list. The rule's Index is set to its
// position within that list; Cost must already be computed by the
// caller. It is the only mutation Grammar permits after Builder.Compile,
// and is intended for use exclusively by internal/editrules.
func (g *Grammar) AppendGeneratedRule(symbolName string, r *Rule) bool {
	s, ok := g.symbols[symbolName]
	if !ok {
		return false
	}
	r.LHS = symbolName
	r.Index = len(s.Rules)
	s.Rules = append(s.Rules, r)
	return true
}
