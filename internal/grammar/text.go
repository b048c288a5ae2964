package grammar

import "strings"

// InflectionMap carries a terminal rule's surface forms keyed by
// grammatical case ("oneSg", "threeSg", "pl", "past", ...), used
// downstream by the parser to conjugate matched text. Two rules built
// from the same authoring descriptor share the same map value, so
// callers must treat a RuleText's Inflections as read-only.
type InflectionMap map[string]string

// Recognized inflection keys. Not exhaustive by construction -- the
// terminal-set builder is free to add descriptor-specific keys -- but
// these are the ones the edit-rule generator and downstream parser know
// about.
const (
	FormOneSg              = "oneSg"
	FormThreeSg            = "threeSg"
	FormPlural             = "pl"
	FormPast               = "past"
	FormPresentSubjunctive = "presentSubjunctive"
	FormPresentParticiple  = "presentParticiple"
	FormPastParticiple     = "pastParticiple"
)

// RuleText is the discriminated union of a terminal rule's display text:
// either a literal surface string, or an inflection map to be resolved at
// parse time. Exactly one of the two forms is populated.
type RuleText struct {
	literal     string
	inflections InflectionMap
}

// TextLiteral wraps a plain surface string.
func TextLiteral(s string) RuleText {
	return RuleText{literal: s}
}

// TextInflected wraps an inflection map. The map is used by reference;
// callers that need an independent copy should clone before passing it
// in if they intend to mutate it afterward.
func TextInflected(m InflectionMap) RuleText {
	return RuleText{inflections: m}
}

// IsInflected reports whether this RuleText carries an inflection map
// rather than a plain literal.
func (t RuleText) IsInflected() bool {
	return t.inflections != nil
}

// Literal returns the literal surface string. It panics if the RuleText
// is inflected; callers should check IsInflected first.
func (t RuleText) Literal() string {
	if t.inflections != nil {
		panic("grammar: Literal() called on an inflected RuleText")
	}
	return t.literal
}

// Inflections returns the inflection map. It panics if the RuleText is a
// plain literal; callers should check IsInflected first.
func (t RuleText) Inflections() InflectionMap {
	if t.inflections == nil {
		panic("grammar: Inflections() called on a literal RuleText")
	}
	return t.inflections
}

// String renders a display form of the text regardless of kind, picking
// the oneSg form (or the first form found) for an inflected RuleText.
func (t RuleText) String() string {
	if !t.IsInflected() {
		return t.literal
	}
	if s, ok := t.inflections[FormOneSg]; ok {
		return s
	}
	for _, v := range t.inflections {
		return v
	}
	return ""
}

// ConcatText implements insertion-rule text composition: string+string
// joins with a single collapsed space, string+map and map+string append
// the string to every form, and map+map concatenates per-key.
func ConcatText(a, b RuleText) RuleText {
	switch {
	case !a.IsInflected() && !b.IsInflected():
		return TextLiteral(joinWords(a.literal, b.literal))
	case a.IsInflected() && !b.IsInflected():
		out := make(InflectionMap, len(a.inflections))
		for k, v := range a.inflections {
			out[k] = joinWords(v, b.literal)
		}
		return TextInflected(out)
	case !a.IsInflected() && b.IsInflected():
		out := make(InflectionMap, len(b.inflections))
		for k, v := range b.inflections {
			out[k] = joinWords(a.literal, v)
		}
		return TextInflected(out)
	default:
		out := make(InflectionMap, len(a.inflections))
		for k, av := range a.inflections {
			bv := b.inflections[k]
			out[k] = joinWords(av, bv)
		}
		// pick up any key present only on b
		for k, bv := range b.inflections {
			if _, ok := a.inflections[k]; !ok {
				out[k] = joinWords("", bv)
			}
		}
		return TextInflected(out)
	}
}

// joinWords concatenates two surface fragments with a single space,
// collapsing a leading space when the left side is empty.
func joinWords(left, right string) string {
	left = strings.TrimRight(left, " ")
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	return left + " " + right
}
