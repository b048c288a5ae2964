package editrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellham/nlgram/internal/grammar"
)

// buildEmptyElimGrammar authors S -> A B where A is nullable (empty
// terminal rule) and B is a plain terminal, the minimal shape a binary
// rule is reduced from.
func buildEmptyElimGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("S")
	require.NoError(t, err)
	_, err = b.NewSymbol("A")
	require.NoError(t, err)
	_, err = b.NewSymbol("B")
	require.NoError(t, err)

	b.SetStart("S")
	_, err = b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"A", "B"}})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("A", grammar.TerminalRuleInput{RHS: grammar.EmptySymbol})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("B", grammar.TerminalRuleInput{RHS: "repository"})
	require.NoError(t, err)

	g, err := b.Compile()
	require.NoError(t, err)
	return g
}

func Test_Generate_eliminatesEmpties(t *testing.T) {
	g := buildEmptyElimGrammar(t)
	Generate(g)

	rules := g.Rules("S")
	var found bool
	for _, r := range rules {
		if !r.Terminal && len(r.RHS) == 1 && r.RHS[0] == "B" {
			found = true
			assert.False(t, r.Terminal)
		}
	}
	assert.True(t, found, "expected a derived S -> B rule reducing the nullable A")
}

// Test_Generate_transpositionIdempotent checks that re-running the
// generator adds no new transposition rule.
func Test_Generate_transpositionIdempotent(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("S")
	require.NoError(t, err)
	_, err = b.NewSymbol("A")
	require.NoError(t, err)
	_, err = b.NewSymbol("B")
	require.NoError(t, err)

	b.SetStart("S")
	cost := 0.5
	_, err = b.AddNonterminalRule("S", grammar.NonterminalRuleInput{
		RHS:               []string{"A", "B"},
		TranspositionCost: &cost,
	})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("A", grammar.TerminalRuleInput{RHS: "the"})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("B", grammar.TerminalRuleInput{RHS: "repository"})
	require.NoError(t, err)

	g, err := b.Compile()
	require.NoError(t, err)

	Generate(g)
	countAfterFirst := len(g.Rules("S"))
	assert.Equal(t, 2, countAfterFirst, "expected the authored rule plus one transposed rule")

	Generate(g)
	countAfterSecond := len(g.Rules("S"))
	assert.Equal(t, countAfterFirst, countAfterSecond, "re-running Generate must add no new transposition rule")
}

// Test_Generate_insertionComposesText checks that an insertable Det
// ("the", cost 1) composed with a verb carrying a full inflection map
// yields a derived rule whose text prefixes every inflected form and
// whose cost is original + 1.
func Test_Generate_insertionComposesText(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("VP")
	require.NoError(t, err)
	_, err = b.NewSymbol("Det")
	require.NoError(t, err)
	_, err = b.NewSymbol("Verb")
	require.NoError(t, err)

	b.SetStart("VP")
	_, err = b.AddNonterminalRule("VP", grammar.NonterminalRuleInput{RHS: []string{"Det", "Verb"}})
	require.NoError(t, err)

	insCost := 1.0
	_, err = b.AddTerminalRule("Det", grammar.TerminalRuleInput{
		RHS:           "the",
		InsertionCost: &insCost,
	})
	require.NoError(t, err)

	verbRule, err := b.AddTerminalRule("Verb", grammar.TerminalRuleInput{
		RHS: "go",
		Text: grammar.TextInflected(grammar.InflectionMap{
			grammar.FormOneSg:   "go",
			grammar.FormThreeSg: "goes",
			grammar.FormPlural:  "go",
			grammar.FormPast:    "went",
		}),
	})
	require.NoError(t, err)

	g, err := b.Compile()
	require.NoError(t, err)

	vpRuleBefore := g.Rules("VP")[0]
	Generate(g)

	var derived *grammar.Rule
	for _, r := range g.Rules("VP") {
		if r.InsertionIdx != nil && *r.InsertionIdx == 0 {
			derived = r
		}
	}
	require.NotNil(t, derived, "expected a derived VP -> Verb insertion rule")

	assert.True(t, derived.Text.IsInflected())
	assert.Equal(t, grammar.InflectionMap{
		grammar.FormOneSg:   "the go",
		grammar.FormThreeSg: "the goes",
		grammar.FormPlural:  "the go",
		grammar.FormPast:    "the went",
	}, derived.Text.Inflections())

	assert.Equal(t, vpRuleBefore.Cost+insCost, derived.Cost)
	assert.False(t, verbRule.IsEdit())
	assert.True(t, derived.IsEdit())
}
