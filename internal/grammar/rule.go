package grammar

import (
	"strings"

	"github.com/pellham/nlgram/internal/semantic"
)

// EmptySymbol is the distinguished empty-terminal marker, written ε. A
// terminal rule whose RHS is EmptySymbol derives the empty string.
const EmptySymbol = "ε"

// RuleBaseCost is the per-index cost increment assigned to an authored
// rule: the k-th rule added to a given LHS gets base cost k*RuleBaseCost,
// before any semantic cost penalty is added.
const RuleBaseCost = 1e-7

// Rule is a single production LHS -> RHS. Nonterminal and terminal
// rules share this one record; which optional fields are populated is
// determined by Terminal.
type Rule struct {
	LHS      string
	RHS      []string
	Terminal bool

	// Index is the rule's position within its LHS's rule list at the
	// time it was added (authored rules) or appended (generated rules).
	Index int
	Cost  float64

	// Semantic is set only on nonterminal rules.
	Semantic *semantic.Semantic

	// Text is set on terminal rules and on generated insertion rules.
	Text *RuleText

	// InsertionCost marks a terminal rule as insertable by the edit-rule
	// generator. Nil means not insertable.
	InsertionCost *float64

	// TranspositionCost marks a binary nonterminal rule as transposable.
	// Nil means not transposable.
	TranspositionCost *float64

	GrammaticalCase string
	VerbForm        string
	PersonNumber    string

	// InsertionIdx is set only on a generated insertion rule, and is 0 or
	// 1, indicating which RHS position of the source rule was
	// synthesized away.
	InsertionIdx *int

	// Transposition is true only on a generated transposition rule.
	Transposition bool
}

// IsEdit reports whether this rule is a generated insertion or
// transposition rule. Such rules are excluded from ambiguity enumeration
// because their ambiguity is pre-resolved by construction. Unary rules
// added by empty-symbol elimination carry neither marker, so IsEdit
// reports false for them.
func (r *Rule) IsEdit() bool {
	return r.InsertionIdx != nil || r.Transposition
}

// IsEmpty reports whether this is the distinguished ε-producing
// terminal rule.
func (r *Rule) IsEmpty() bool {
	return r.Terminal && len(r.RHS) == 1 && r.RHS[0] == EmptySymbol
}

// rhsKey returns a normalization of the RHS suitable for duplicate
// detection: nonterminal RHS are joined by symbol name, terminal RHS is
// just the terminal string.
func (r *Rule) rhsKey() string {
	return strings.Join(r.RHS, "\x1f")
}

// String renders the rule in "LHS -> RHS" form for diagnostics.
func (r *Rule) String() string {
	rhs := strings.Join(r.RHS, " ")
	if r.Terminal {
		rhs = "\"" + rhs + "\""
	}
	return r.LHS + " -> " + rhs
}
