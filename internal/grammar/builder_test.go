package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pellham/nlgram/internal/gerr"
)

func isKind(err error, k gerr.Kind) bool {
	return errors.Is(err, &gerr.Error{Kind: k})
}

func Test_Builder_NewSymbol(t *testing.T) {
	testCases := []struct {
		name      string
		parts     []string
		preExists bool
		expectErr gerr.Kind
	}{
		{name: "simple name", parts: []string{"S"}},
		{name: "multi-part name joins with space", parts: []string{"Noun", "Phrase"}},
		{name: "empty part is ill-formed", parts: []string{"S", ""}, expectErr: gerr.IllFormedName},
		{name: "no parts is ill-formed", parts: nil, expectErr: gerr.IllFormedName},
		{name: "duplicate name rejected", parts: []string{"S"}, preExists: true, expectErr: gerr.DuplicateSymbol},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder()
			if tc.preExists {
				_, err := b.NewSymbol(tc.parts...)
				assert.NoError(t, err)
			}

			_, err := b.NewSymbol(tc.parts...)
			if tc.expectErr != "" {
				assert.Error(t, err)
				assert.True(t, isKind(err, tc.expectErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Builder_AddTerminalRule_duplicate(t *testing.T) {
	b := NewBuilder()
	_, err := b.NewSymbol("A")
	assert.NoError(t, err)

	_, err = b.AddTerminalRule("A", TerminalRuleInput{RHS: "x"})
	assert.NoError(t, err)

	_, err = b.AddTerminalRule("A", TerminalRuleInput{RHS: "x"})
	assert.Error(t, err)
	assert.True(t, isKind(err, gerr.DuplicateRule))
}

func Test_Builder_HasRules(t *testing.T) {
	b := NewBuilder()
	_, err := b.NewSymbol("A")
	assert.NoError(t, err)

	assert.False(t, b.HasRules("A"))
	assert.False(t, b.HasRules("Unregistered"))

	_, err = b.AddTerminalRule("A", TerminalRuleInput{RHS: "x"})
	assert.NoError(t, err)
	assert.True(t, b.HasRules("A"))
}

func Test_Builder_AddNonterminalRule_arity(t *testing.T) {
	b := NewBuilder()
	_, err := b.NewSymbol("S")
	assert.NoError(t, err)

	_, err = b.AddNonterminalRule("S", NonterminalRuleInput{RHS: []string{}})
	assert.Error(t, err)
	assert.True(t, isKind(err, gerr.IllFormedRule))

	_, err = b.AddNonterminalRule("S", NonterminalRuleInput{RHS: []string{"A", "B", "C"}})
	assert.Error(t, err)
	assert.True(t, isKind(err, gerr.IllFormedRule))
}

func Test_Builder_AddNonterminalRule_transpositionRequiresBinary(t *testing.T) {
	b := NewBuilder()
	_, err := b.NewSymbol("S")
	assert.NoError(t, err)

	cost := 1.0
	_, err = b.AddNonterminalRule("S", NonterminalRuleInput{
		RHS:               []string{"A"},
		TranspositionCost: &cost,
	})
	assert.Error(t, err)
	assert.True(t, isKind(err, gerr.IllFormedRule))
}

func Test_Builder_Compile(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(b *Builder) error
		expectErr gerr.Kind
	}{
		{
			name: "unset start symbol",
			build: func(b *Builder) error {
				_, err := b.NewSymbol("S")
				return err
			},
			expectErr: gerr.BadConfig,
		},
		{
			name: "start symbol with no rules",
			build: func(b *Builder) error {
				_, err := b.NewSymbol("S")
				b.SetStart("S")
				return err
			},
			expectErr: gerr.IllFormedRule,
		},
		{
			name: "rule references unknown symbol",
			build: func(b *Builder) error {
				if _, err := b.NewSymbol("S"); err != nil {
					return err
				}
				b.SetStart("S")
				_, err := b.AddNonterminalRule("S", NonterminalRuleInput{RHS: []string{"Ghost"}})
				return err
			},
			expectErr: gerr.UnknownSymbol,
		},
		{
			name: "minimal valid grammar",
			build: func(b *Builder) error {
				if _, err := b.NewSymbol("S"); err != nil {
					return err
				}
				b.SetStart("S")
				_, err := b.AddTerminalRule("S", TerminalRuleInput{RHS: "x"})
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder()
			err := tc.build(b)
			assert.NoError(t, err)

			g, err := b.Compile()
			if tc.expectErr != "" {
				assert.Error(t, err)
				assert.True(t, isKind(err, tc.expectErr))
				assert.Nil(t, g)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, g)
				assert.Equal(t, "S", g.Start())
			}
		})
	}
}
