package main

import (
	"github.com/pellham/nlgram/internal/fixtures"
	"github.com/pellham/nlgram/internal/grammar"
)

var fixtureNames = fixtures.Names

func buildFixture(name string) (*grammar.Grammar, error) {
	return fixtures.Build(name)
}
