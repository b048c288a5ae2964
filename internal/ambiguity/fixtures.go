package ambiguity

import "github.com/pellham/nlgram/internal/grammar"

// BuildTestGrammar constructs the built-in deliberately-ambiguous grammar
// used by self-test mode: every nonterminal name contains "ambig" so a
// reader of diagnostic output can immediately tell a witness came from
// the fixture grammar rather than an authored one.
func BuildTestGrammar() (*grammar.Grammar, error) {
	b := grammar.NewBuilder()

	for _, name := range []string{"ambigRoot", "ambigLeaf", "ambigMid"} {
		if _, err := b.NewSymbol(name); err != nil {
			return nil, err
		}
	}
	b.SetStart("ambigRoot")

	// Ambiguity through an intermediate symbol: two rules for ambigRoot produce the identical
	// fringe "x" by different routes (ambigLeaf vs. ambigMid -> ambigLeaf).
	if _, err := b.AddNonterminalRule("ambigRoot", grammar.NonterminalRuleInput{
		RHS: []string{"ambigLeaf"},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddNonterminalRule("ambigRoot", grammar.NonterminalRuleInput{
		RHS: []string{"ambigMid"},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddNonterminalRule("ambigMid", grammar.NonterminalRuleInput{
		RHS: []string{"ambigLeaf"},
	}); err != nil {
		return nil, err
	}
	if _, err := b.AddTerminalRule("ambigLeaf", grammar.TerminalRuleInput{
		RHS: "x",
	}); err != nil {
		return nil, err
	}

	return b.Compile()
}
