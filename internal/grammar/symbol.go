package grammar

// Symbol is a named nonterminal owning an ordered list of its production
// rules. Symbol names are unique process-wide within one grammar.
type Symbol struct {
	Name  string
	Rules []*Rule
}

// NonEditRules returns the subset of Rules for which IsEdit is false:
// the authored rules plus any rules added by empty-symbol elimination,
// excluding generated insertion and transposition rules. This is the
// rule set the ambiguity detector enumerates over.
func (s *Symbol) NonEditRules() []*Rule {
	out := make([]*Rule, 0, len(s.Rules))
	for _, r := range s.Rules {
		if !r.IsEdit() {
			out = append(out, r)
		}
	}
	return out
}

// hasRHS reports whether the symbol already has a rule with the given
// normalized RHS, used for duplicate-rule detection at authoring time.
func (s *Symbol) hasRHS(terminal bool, key string) bool {
	for _, r := range s.Rules {
		if r.Terminal == terminal && r.rhsKey() == key {
			return true
		}
	}
	return false
}
