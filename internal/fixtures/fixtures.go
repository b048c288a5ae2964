// Package fixtures authors the built-in demo grammars shared by
// cmd/gramc and cmd/gramsvc/server. The core itself does not parse any
// external grammar-authoring file format; that remains domain code, and
// these fixtures stand in for it until one exists.
package fixtures

import (
	"fmt"

	"github.com/pellham/nlgram/internal/grammar"
	"github.com/pellham/nlgram/internal/lexset"
	"github.com/pellham/nlgram/internal/semantic"
)

// Names lists the fixtures Build accepts.
var Names = []string{"people-qa", "ambig"}

// Build authors and compiles one of the built-in demo grammars.
func Build(name string) (*grammar.Grammar, error) {
	switch name {
	case "people-qa":
		return buildPeopleQA()
	case "ambig":
		return buildAmbigDemo()
	default:
		return nil, fmt.Errorf("unknown fixture %q (want one of %v)", name, Names)
	}
}

// buildPeopleQA authors a small grammar for a question-answering system
// over people, repositories, and companies, meant to exercise every
// authoring API in a single, readable example rather than to be
// linguistically complete.
func buildPeopleQA() (*grammar.Grammar, error) {
	b := grammar.NewBuilder()

	for _, name := range []string{"Query", "PersonRef", "OwnsClause", "RepoRef", "Verb", "Det"} {
		if _, err := b.NewSymbol(name); err != nil {
			return nil, err
		}
	}
	b.SetStart("Query")
	b.AddDeletable("the")

	whoOwns := semantic.New("whoOwns", 0, 1, 1)
	if _, err := b.AddNonterminalRule("Query", grammar.NonterminalRuleInput{
		RHS:      []string{"PersonRef", "OwnsClause"},
		Semantic: &whoOwns,
	}); err != nil {
		return nil, err
	}

	if _, err := b.AddNonterminalRule("OwnsClause", grammar.NonterminalRuleInput{
		RHS: []string{"Verb", "RepoRef"},
	}); err != nil {
		return nil, err
	}

	if _, err := b.AddNonterminalRule("RepoRef", grammar.NonterminalRuleInput{
		RHS: []string{"Det", "RepoRef"},
	}); err != nil {
		return nil, err
	}

	if _, err := lexset.BuildLiteralSet(b, "Det", []string{"the", "a"}); err != nil {
		return nil, err
	}

	if _, err := b.AddTerminalRule("PersonRef", grammar.TerminalRuleInput{RHS: "who"}); err != nil {
		return nil, err
	}

	if _, err := lexset.BuildVerbSet(b, "Verb", lexset.VerbDescriptor{
		Forms: grammar.InflectionMap{
			grammar.FormOneSg:   "own",
			grammar.FormThreeSg: "owns",
			grammar.FormPlural:  "own",
			grammar.FormPast:    "owned",
		},
	}); err != nil {
		return nil, err
	}
	insCost := 1.0
	if _, err := b.AddTerminalRule("RepoRef", grammar.TerminalRuleInput{
		RHS:           "repository",
		InsertionCost: &insCost,
	}); err != nil {
		return nil, err
	}

	return b.Compile()
}

// buildAmbigDemo authors a grammar containing a deliberate direct
// ambiguity, for demonstrating the detector's warning output outside of
// the self-test fixture set.
func buildAmbigDemo() (*grammar.Grammar, error) {
	b := grammar.NewBuilder()
	for _, name := range []string{"S", "A", "B"} {
		if _, err := b.NewSymbol(name); err != nil {
			return nil, err
		}
	}
	b.SetStart("S")

	if _, err := b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"A"}}); err != nil {
		return nil, err
	}
	if _, err := b.AddNonterminalRule("S", grammar.NonterminalRuleInput{RHS: []string{"B"}}); err != nil {
		return nil, err
	}
	if _, err := b.AddTerminalRule("A", grammar.TerminalRuleInput{RHS: "x"}); err != nil {
		return nil, err
	}
	if _, err := b.AddTerminalRule("B", grammar.TerminalRuleInput{RHS: "x"}); err != nil {
		return nil, err
	}

	return b.Compile()
}
