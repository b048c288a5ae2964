package ambiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellham/nlgram/internal/config"
	"github.com/pellham/nlgram/internal/grammar"
)

func detectCfg(limit int) config.DetectorConfig {
	return config.DetectorConfig{SymsLimit: limit, FindAll: true}
}

// Test_Detect_unambiguousUnary checks that a symbol with a single rule
// per alternative and no shared fringe produces no witness.
func Test_Detect_unambiguousUnary(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("S")
	require.NoError(t, err)
	b.SetStart("S")
	_, err = b.AddTerminalRule("S", grammar.TerminalRuleInput{RHS: "a"})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("S", grammar.TerminalRuleInput{RHS: "b"})
	require.NoError(t, err)

	g, err := b.Compile()
	require.NoError(t, err)

	witnesses := Detect(g, detectCfg(14))
	assert.Empty(t, witnesses)
}

// Test_Detect_directAmbiguity checks that two rules for the same symbol
// deriving the identical terminal "x" directly are reported as a
// witness.
func Test_Detect_directAmbiguity(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("S")
	require.NoError(t, err)
	_, err = b.NewSymbol("A")
	require.NoError(t, err)
	_, err = b.NewSymbol("B")
	require.NoError(t, err)
	b.SetStart("S")

	_, err = b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"A"}})
	require.NoError(t, err)
	_, err = b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"B"}})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("A", grammar.TerminalRuleInput{RHS: "x"})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("B", grammar.TerminalRuleInput{RHS: "x"})
	require.NoError(t, err)

	g, err := b.Compile()
	require.NoError(t, err)

	witnesses := Detect(g, detectCfg(14))
	require.Len(t, witnesses, 1)
	assert.Equal(t, "S", witnesses[0].Symbol)
	assert.Equal(t, " x", witnesses[0].Fringe)
}

// Test_Detect_indirectAmbiguity checks the ambig* self-test fixture,
// where one rule chains through an intermediate symbol to reach the
// same fringe a sibling rule reaches directly.
func Test_Detect_indirectAmbiguity(t *testing.T) {
	g, err := BuildTestGrammar()
	require.NoError(t, err)

	witnesses := Detect(g, detectCfg(14))
	require.Len(t, witnesses, 1)
	assert.Equal(t, "ambigRoot", witnesses[0].Symbol)
	assert.Equal(t, " x", witnesses[0].Fringe)
}

// Test_Detect_depthHiddenAmbiguity checks a collision that only appears
// once the per-path symbol budget is large enough to let the deeper
// derivation complete.
func Test_Detect_depthHiddenAmbiguity(t *testing.T) {
	b := grammar.NewBuilder()
	for _, name := range []string{"S", "A", "Mid1", "Mid2", "B"} {
		_, err := b.NewSymbol(name)
		require.NoError(t, err)
	}
	b.SetStart("S")

	_, err := b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"A"}})
	require.NoError(t, err)
	_, err = b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"Mid1"}})
	require.NoError(t, err)
	_, err = b.AddNonterminalRule("Mid1", grammar.NonterminalRuleInput{RHS: []string{"Mid2"}})
	require.NoError(t, err)
	_, err = b.AddNonterminalRule("Mid2", grammar.NonterminalRuleInput{RHS: []string{"B"}})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("A", grammar.TerminalRuleInput{RHS: "x"})
	require.NoError(t, err)
	_, err = b.AddTerminalRule("B", grammar.TerminalRuleInput{RHS: "x"})
	require.NoError(t, err)

	gr, err := b.Compile()
	require.NoError(t, err)

	// Symbols placed along S -> Mid1 -> Mid2 -> B are S's root(1) +
	// Mid1(1) + Mid2(1) + B(1) = 4 by the time it completes; a budget of
	// 2 cuts it off before it ever reaches the terminal.
	shallow := Detect(gr, detectCfg(2))
	assert.Empty(t, shallow, "shallow budget should not see the deep collision")

	deep := Detect(gr, detectCfg(6))
	require.Len(t, deep, 1)
	assert.Equal(t, "S", deep[0].Symbol)
}

// Test_Detect_monotonicInSymsLimit checks that raising symsLimit never
// makes a previously-found witness disappear.
func Test_Detect_monotonicInSymsLimit(t *testing.T) {
	gr, err := BuildTestGrammar()
	require.NoError(t, err)

	small := Detect(gr, detectCfg(3))
	large := Detect(gr, detectCfg(20))
	assert.LessOrEqual(t, len(small), len(large))
}

// Test_diffTrim_symmetric checks that diffTrim trims the same number of
// trailing siblings from both sides regardless of argument order.
func Test_diffTrim_symmetric(t *testing.T) {
	shared := &TreeNode{Symbol: "Det", Text: "the"}
	leafA := &TreeNode{Symbol: "A", Text: "x"}
	leafB := &TreeNode{Symbol: "B", Text: "x"}

	treeA := &TreeNode{Symbol: "S", Children: []*TreeNode{leafA, shared}}
	treeB := &TreeNode{Symbol: "S", Children: []*TreeNode{leafB, shared}}

	trimmedA1, trimmedB1 := diffTrim(treeA, treeB)
	trimmedB2, trimmedA2 := diffTrim(treeB, treeA)

	assert.Equal(t, len(trimmedA1.Children), len(trimmedA2.Children))
	assert.Equal(t, len(trimmedB1.Children), len(trimmedB2.Children))
	assert.Len(t, trimmedA1.Children, 1)
	assert.Len(t, trimmedB1.Children, 1)
}

// Test_diffTrim_nestedSharedSubtree checks that a shared subtree nested
// inside a pair of top-level children that otherwise differ is still
// pruned, not just shared subtrees at the top level. S -> A / S -> B
// diverge at the top, but A -> P Q and B -> R Q share the same Q, so the
// minimal witness should retain only P vs. R once Q is trimmed out.
func Test_diffTrim_nestedSharedSubtree(t *testing.T) {
	q := &TreeNode{Symbol: "Q", Text: "y"}
	p := &TreeNode{Symbol: "P", Text: "p"}
	r := &TreeNode{Symbol: "R", Text: "r"}

	a := &TreeNode{Symbol: "A", Children: []*TreeNode{p, q}}
	b := &TreeNode{Symbol: "B", Children: []*TreeNode{r, q}}
	treeA := &TreeNode{Symbol: "S", Children: []*TreeNode{a}}
	treeB := &TreeNode{Symbol: "S", Children: []*TreeNode{b}}

	trimmedA, trimmedB := diffTrim(treeA, treeB)

	require.Len(t, trimmedA.Children, 1)
	require.Len(t, trimmedB.Children, 1)
	assert.Equal(t, "A", trimmedA.Children[0].Symbol)
	assert.Equal(t, "B", trimmedB.Children[0].Symbol)
	require.Len(t, trimmedA.Children[0].Children, 1)
	require.Len(t, trimmedB.Children[0].Children, 1)
	assert.Equal(t, "P", trimmedA.Children[0].Children[0].Symbol)
	assert.Equal(t, "R", trimmedB.Children[0].Children[0].Symbol)
}
