// Package lexset provides authoring helpers that expand a single
// lexical descriptor into the several terminal rules a grammar needs
// for each of its surface forms. Normalization uses
// golang.org/x/text/cases and golang.org/x/text/width.
package lexset

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/pellham/nlgram/internal/gerr"
	"github.com/pellham/nlgram/internal/grammar"
)

var foldCaser = cases.Fold()

// normalize collapses a surface form to its canonical comparison key:
// fullwidth-to-halfwidth folding followed by Unicode case folding, so
// two authored forms that differ only in width or case are treated as
// the same terminal.
func normalize(s string) string {
	return foldCaser.String(width.Fold.String(s))
}

// formOrder lists the recognized inflection keys in a fixed, readable
// order; any other, descriptor-specific keys are emitted afterward in
// sorted order for determinism.
var formOrder = []string{
	grammar.FormOneSg,
	grammar.FormThreeSg,
	grammar.FormPlural,
	grammar.FormPast,
	grammar.FormPresentSubjunctive,
	grammar.FormPresentParticiple,
	grammar.FormPastParticiple,
}

func isPastForm(key string) bool {
	return key == grammar.FormPast || key == grammar.FormPastParticiple
}

// orderedKeys returns forms' keys in formOrder, followed by any
// remaining keys in sorted order.
func orderedKeys(forms grammar.InflectionMap) []string {
	seen := make(map[string]bool, len(forms))
	out := make([]string, 0, len(forms))
	for _, k := range formOrder {
		if _, ok := forms[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range forms {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// VerbDescriptor is the authoring-time description of a single verb
// lexeme's inflected surface forms, keyed by the grammar.Form* constants.
// CanonicalText, if set, names a different inflection map to use as
// every emitted rule's Text instead of Forms -- for a substitution set,
// authored to be replaced at parse time by some other set's surface
// forms, so that a match on any of this descriptor's own forms produces
// the canonical set's text. InsertionCost, if non-nil, is attached only
// to the first rule of the first accepted verb set built for sym.
type VerbDescriptor struct {
	Forms         grammar.InflectionMap
	CanonicalText grammar.InflectionMap
	InsertionCost *float64
}

// BuildVerbSet adds one terminal rule per distinct surface form in
// d.Forms to sym. Every rule's Text is the same shared inflection map
// (d.Forms, or d.CanonicalText for a substitution set). Two form keys
// that realize the same normalized surface string collapse to a single
// rule. Forms keyed past or pastParticiple are tagged VerbForm: "past".
func BuildVerbSet(b *grammar.Builder, sym string, d VerbDescriptor) ([]*grammar.Rule, error) {
	if len(d.Forms) == 0 {
		return nil, gerr.New(gerr.IllFormedRule, "%s: verb descriptor has no forms", sym)
	}

	text := d.Forms
	if d.CanonicalText != nil {
		text = d.CanonicalText
	}
	ruleText := grammar.TextInflected(text)

	firstOfSet := !b.HasRules(sym)

	seen := make(map[string]bool, len(d.Forms))
	var out []*grammar.Rule
	for _, key := range orderedKeys(d.Forms) {
		surface := d.Forms[key]
		norm := normalize(surface)
		if seen[norm] {
			continue
		}
		seen[norm] = true

		in := grammar.TerminalRuleInput{
			RHS:  surface,
			Text: ruleText,
		}
		if isPastForm(key) {
			in.VerbForm = "past"
		}
		if firstOfSet && len(out) == 0 && d.InsertionCost != nil {
			in.InsertionCost = d.InsertionCost
		}

		r, err := b.AddTerminalRule(sym, in)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// BuildLiteralSet adds one terminal rule per literal surface string in
// forms, deduplicating case/width variants via normalize before
// authoring, so e.g. "The" and "the" collapse to a single rule.
func BuildLiteralSet(b *grammar.Builder, sym string, forms []string) ([]*grammar.Rule, error) {
	seen := make(map[string]bool, len(forms))
	var out []*grammar.Rule
	for _, f := range forms {
		key := normalize(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		r, err := b.AddTerminalRule(sym, grammar.TerminalRuleInput{RHS: f})
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
