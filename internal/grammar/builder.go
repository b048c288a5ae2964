// Package grammar implements the symbol & rule store: an explicit,
// non-global Builder value through which domain code authors symbols
// and rules, sealed by Compile into an immutable Grammar that the
// edit-rule generator enriches and the ambiguity detector reads.
package grammar

import (
	"strings"

	"github.com/pellham/nlgram/internal/gerr"
	"github.com/pellham/nlgram/internal/semantic"
)

// Builder is the authoring-time grammar under construction. It is an
// explicit value threaded through authoring code, not a package-level
// singleton.
type Builder struct {
	symbols    map[string]*Symbol
	order      []string
	start      string
	deletables map[string]bool
}

// NewBuilder returns an empty Builder ready for authoring.
func NewBuilder() *Builder {
	return &Builder{
		symbols:    make(map[string]*Symbol),
		deletables: make(map[string]bool),
	}
}

// NewSymbol registers a fresh nonterminal symbol whose name is the
// space-joined concatenation of nameParts, and returns that joined name.
// It fails with a DuplicateSymbol error if the name is already
// registered, or IllFormedName if any part is empty.
func (b *Builder) NewSymbol(nameParts ...string) (string, error) {
	if len(nameParts) == 0 {
		return "", gerr.New(gerr.IllFormedName, "no name parts given")
	}
	for _, p := range nameParts {
		if strings.TrimSpace(p) == "" {
			return "", gerr.New(gerr.IllFormedName, "symbol name has an empty part")
		}
	}
	name := strings.Join(nameParts, " ")
	if _, exists := b.symbols[name]; exists {
		return "", gerr.New(gerr.DuplicateSymbol, "symbol %q already registered", name)
	}
	b.symbols[name] = &Symbol{Name: name}
	b.order = append(b.order, name)
	return name, nil
}

// SetStart designates the grammar's start symbol. It does not require
// the symbol to already exist; existence is checked at Compile time.
func (b *Builder) SetStart(name string) {
	b.start = name
}

// AddDeletable marks a terminal string as an authored deletable, eligible
// for elision by the insertion-rule generator.
func (b *Builder) AddDeletable(terminal string) {
	b.deletables[terminal] = true
}

// HasRules reports whether sym already has at least one authored rule.
// Terminal-set builders use this to decide which of several calls
// authoring a single symbol is the first, since only that call's rule
// should carry an insertion cost.
func (b *Builder) HasRules(sym string) bool {
	s, ok := b.symbols[sym]
	return ok && len(s.Rules) > 0
}

// TerminalRuleInput describes a terminal rule to add via AddTerminalRule.
type TerminalRuleInput struct {
	// RHS is the terminal string this rule matches. May be EmptySymbol.
	RHS string
	// Text is the rule's display/conjugation text. If the zero value,
	// it defaults to a literal equal to RHS.
	Text RuleText
	// InsertionCost marks the rule insertable if non-nil.
	InsertionCost *float64
	// VerbForm tags the inflectional category this surface form
	// realizes, e.g. "past" for a past-tense or past-participle form.
	// Empty for forms with no special tagging.
	VerbForm string
}

// AddTerminalRule validates in and, if well-formed, appends a terminal
// rule to sym's rule list. Fails with IllFormedRule if RHS is empty, or
// DuplicateRule if sym already has a terminal rule with the same RHS.
func (b *Builder) AddTerminalRule(sym string, in TerminalRuleInput) (*Rule, error) {
	s, ok := b.symbols[sym]
	if !ok {
		return nil, gerr.New(gerr.UnknownSymbol, "symbol %q not registered", sym)
	}
	if in.RHS == "" {
		return nil, gerr.New(gerr.IllFormedRule, "%s: terminal rule has empty RHS", sym)
	}
	if s.hasRHS(true, in.RHS) {
		return nil, gerr.New(gerr.DuplicateRule, "%s: duplicate terminal rule for %q", sym, in.RHS)
	}

	text := in.Text
	if text.literal == "" && text.inflections == nil {
		text = TextLiteral(in.RHS)
	}

	r := &Rule{
		LHS:           sym,
		RHS:           []string{in.RHS},
		Terminal:      true,
		Index:         len(s.Rules),
		Text:          &text,
		InsertionCost: in.InsertionCost,
		VerbForm:      in.VerbForm,
	}
	r.Cost = float64(r.Index) * RuleBaseCost

	s.Rules = append(s.Rules, r)
	return r, nil
}

// NonterminalRuleInput describes a nonterminal rule to add via
// AddNonterminalRule.
type NonterminalRuleInput struct {
	// RHS is the sequence of referenced symbol names, length 1 or 2.
	RHS               []string
	Semantic          *semantic.Semantic
	TranspositionCost *float64
	GrammaticalCase   string
	VerbForm          string
	PersonNumber      string
}

// AddNonterminalRule validates in and, if well-formed, appends a
// nonterminal rule to sym's rule list. RHS length must be 1 or 2;
// TranspositionCost requires a binary RHS. Referenced symbols are not
// required to exist yet -- that is checked at Compile time, to allow
// forward references during authoring.
func (b *Builder) AddNonterminalRule(sym string, in NonterminalRuleInput) (*Rule, error) {
	s, ok := b.symbols[sym]
	if !ok {
		return nil, gerr.New(gerr.UnknownSymbol, "symbol %q not registered", sym)
	}
	if len(in.RHS) < 1 || len(in.RHS) > 2 {
		return nil, gerr.New(gerr.IllFormedRule, "%s: nonterminal RHS must have 1 or 2 symbols, got %d", sym, len(in.RHS))
	}
	if in.TranspositionCost != nil && len(in.RHS) != 2 {
		return nil, gerr.New(gerr.IllFormedRule, "%s: transpositionCost requires a binary RHS", sym)
	}

	rhs := make([]string, len(in.RHS))
	copy(rhs, in.RHS)

	r := &Rule{
		LHS:               sym,
		RHS:               rhs,
		Terminal:          false,
		Index:             len(s.Rules),
		Semantic:          in.Semantic,
		TranspositionCost: in.TranspositionCost,
		GrammaticalCase:   in.GrammaticalCase,
		VerbForm:          in.VerbForm,
		PersonNumber:      in.PersonNumber,
	}
	if s.hasRHS(false, r.rhsKey()) {
		return nil, gerr.New(gerr.DuplicateRule, "%s: duplicate nonterminal rule for RHS %v", sym, in.RHS)
	}

	r.Cost = float64(r.Index) * RuleBaseCost
	if in.Semantic != nil {
		r.Cost += in.Semantic.Cost
	}

	s.Rules = append(s.Rules, r)
	return r, nil
}

// Compile verifies every RHS-referenced symbol exists (invariant 1),
// that the start symbol is set and has at least one rule (invariant 6),
// and seals the Builder into an immutable Grammar.
func (b *Builder) Compile() (*Grammar, error) {
	if b.start == "" {
		return nil, gerr.New(gerr.BadConfig, "no start symbol designated")
	}
	startSym, ok := b.symbols[b.start]
	if !ok {
		return nil, gerr.New(gerr.UnknownSymbol, "start symbol %q not registered", b.start)
	}
	if len(startSym.Rules) == 0 {
		return nil, gerr.New(gerr.IllFormedRule, "start symbol %q has no rules", b.start)
	}

	for _, name := range b.order {
		sym := b.symbols[name]
		for _, r := range sym.Rules {
			if r.Terminal {
				continue
			}
			for _, ref := range r.RHS {
				if _, ok := b.symbols[ref]; !ok {
					return nil, gerr.New(gerr.UnknownSymbol, "%s: references unknown symbol %q", r.String(), ref)
				}
			}
		}
	}

	deletables := make(map[string]bool, len(b.deletables))
	for k, v := range b.deletables {
		deletables[k] = v
	}

	return &Grammar{
		symbols:    b.symbols,
		order:      append([]string(nil), b.order...),
		start:      b.start,
		deletables: deletables,
	}, nil
}
