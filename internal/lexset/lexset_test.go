package lexset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellham/nlgram/internal/grammar"
)

func Test_BuildLiteralSet_dedupesCaseAndWidth(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("Det")
	require.NoError(t, err)

	rules, err := BuildLiteralSet(b, "Det", []string{"the", "The", "ＴＨＥ", "a"})
	require.NoError(t, err)
	assert.Len(t, rules, 2, "case/width variants of \"the\" collapse to one rule")
}

func Test_BuildLiteralSet_unknownSymbol(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := BuildLiteralSet(b, "Det", []string{"the"})
	assert.Error(t, err)
}

func Test_BuildVerbSet_oneRulePerDistinctSurfaceForm(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("Verb")
	require.NoError(t, err)

	forms := grammar.InflectionMap{
		grammar.FormOneSg:   "own",
		grammar.FormThreeSg: "owns",
		grammar.FormPlural:  "own",
		grammar.FormPast:    "owned",
	}
	rules, err := BuildVerbSet(b, "Verb", VerbDescriptor{Forms: forms})
	require.NoError(t, err)

	// oneSg and pl share the surface form "own", so four forms collapse
	// to three distinct rules.
	require.Len(t, rules, 3)

	surfaces := make(map[string]bool, len(rules))
	for _, r := range rules {
		surfaces[r.RHS[0]] = true
		assert.True(t, r.Text.IsInflected())
		assert.Equal(t, forms, r.Text.Inflections(), "every rule shares the same inflection map")
	}
	assert.True(t, surfaces["own"])
	assert.True(t, surfaces["owns"])
	assert.True(t, surfaces["owned"])
}

func Test_BuildVerbSet_tagsPastForms(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("Verb")
	require.NoError(t, err)

	rules, err := BuildVerbSet(b, "Verb", VerbDescriptor{
		Forms: grammar.InflectionMap{
			grammar.FormOneSg:          "go",
			grammar.FormThreeSg:        "goes",
			grammar.FormPlural:         "go",
			grammar.FormPast:           "went",
			grammar.FormPastParticiple: "gone",
		},
	})
	require.NoError(t, err)

	byRHS := make(map[string]string, len(rules))
	for _, r := range rules {
		byRHS[r.RHS[0]] = r.VerbForm
	}
	assert.Equal(t, "", byRHS["go"])
	assert.Equal(t, "", byRHS["goes"])
	assert.Equal(t, "past", byRHS["went"])
	assert.Equal(t, "past", byRHS["gone"])
}

func Test_BuildVerbSet_substitutionSetUsesCanonicalText(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("Verb")
	require.NoError(t, err)

	canonical := grammar.InflectionMap{
		grammar.FormOneSg: "own",
	}
	rules, err := BuildVerbSet(b, "Verb", VerbDescriptor{
		Forms:         grammar.InflectionMap{grammar.FormOneSg: "possess"},
		CanonicalText: canonical,
	})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "possess", rules[0].RHS[0])
	assert.Equal(t, canonical, rules[0].Text.Inflections())
}

func Test_BuildVerbSet_insertionCostOnlyOnFirstRuleOfFirstSet(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("Verb")
	require.NoError(t, err)

	cost := 1.0
	first, err := BuildVerbSet(b, "Verb", VerbDescriptor{
		Forms: grammar.InflectionMap{
			grammar.FormOneSg:   "own",
			grammar.FormThreeSg: "owns",
		},
		InsertionCost: &cost,
	})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Same(t, &cost, first[0].InsertionCost)
	assert.Nil(t, first[1].InsertionCost)

	second, err := BuildVerbSet(b, "Verb", VerbDescriptor{
		Forms: grammar.InflectionMap{
			grammar.FormOneSg: "owned",
		},
		InsertionCost: &cost,
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Nil(t, second[0].InsertionCost, "insertion cost only attaches to the first accepted set")
}

func Test_BuildVerbSet_emptyForms(t *testing.T) {
	b := grammar.NewBuilder()
	_, err := b.NewSymbol("Verb")
	require.NoError(t, err)

	_, err = BuildVerbSet(b, "Verb", VerbDescriptor{})
	assert.Error(t, err)
}
