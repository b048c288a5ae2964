// Package serialize implements the compiled-grammar artifact format
// persisted by cmd/gramsvc's job store: REZI (github.com/dekarrin/rezi)
// for the binary field codec, which the HTTP API also returns
// base64-encoded, and encoding/json for the human-facing artifact
// representation written by cmd/gramc --json.
package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/dekarrin/rezi"
	"github.com/pellham/nlgram/internal/grammar"
)

// RuleRecord is the flattened, serializable form of a grammar.Rule.
type RuleRecord struct {
	LHS               string
	RHS               []string
	Terminal          bool
	Index             int
	Cost              float64
	SemanticName      string
	SemanticCost      float64
	HasSemantic       bool
	TextLiteral       string
	TextInflections   map[string]string
	HasText           bool
	TextIsInflected   bool
	HasInsertionCost  bool
	InsertionCost     float64
	HasTranspCost     bool
	TranspositionCost float64
	GrammaticalCase   string
	VerbForm          string
	PersonNumber      string
	InsertionIdx      int
	HasInsertionIdx   bool
	Transposition     bool
}

// SymbolRecord is the flattened, serializable form of a grammar.Symbol.
type SymbolRecord struct {
	Name  string
	Rules []RuleRecord
}

// Artifact is the persisted result of compiling and enriching a grammar:
// the full rule store plus enough metadata to reproduce diagnostics
// without re-running the compiler.
type Artifact struct {
	Start      string
	Deletables []string
	Symbols    []SymbolRecord
}

// FromGrammar flattens a compiled grammar.Grammar into an Artifact.
func FromGrammar(g *grammar.Grammar) Artifact {
	a := Artifact{Start: g.Start()}
	for k := range g.DeletableSet() {
		a.Deletables = append(a.Deletables, k)
	}
	for _, name := range g.SymbolNames() {
		sr := SymbolRecord{Name: name}
		for _, r := range g.Rules(name) {
			sr.Rules = append(sr.Rules, ruleToRecord(r))
		}
		a.Symbols = append(a.Symbols, sr)
	}
	return a
}

func ruleToRecord(r *grammar.Rule) RuleRecord {
	rr := RuleRecord{
		LHS:             r.LHS,
		RHS:             append([]string(nil), r.RHS...),
		Terminal:        r.Terminal,
		Index:           r.Index,
		Cost:            r.Cost,
		GrammaticalCase: r.GrammaticalCase,
		VerbForm:        r.VerbForm,
		PersonNumber:    r.PersonNumber,
		Transposition:   r.Transposition,
	}
	if r.Semantic != nil {
		rr.HasSemantic = true
		rr.SemanticName = r.Semantic.Name
		rr.SemanticCost = r.Semantic.Cost
	}
	if r.Text != nil {
		rr.HasText = true
		rr.TextIsInflected = r.Text.IsInflected()
		if rr.TextIsInflected {
			rr.TextInflections = map[string]string(r.Text.Inflections())
		} else {
			rr.TextLiteral = r.Text.Literal()
		}
	}
	if r.InsertionCost != nil {
		rr.HasInsertionCost = true
		rr.InsertionCost = *r.InsertionCost
	}
	if r.TranspositionCost != nil {
		rr.HasTranspCost = true
		rr.TranspositionCost = *r.TranspositionCost
	}
	if r.InsertionIdx != nil {
		rr.HasInsertionIdx = true
		rr.InsertionIdx = *r.InsertionIdx
	}
	return rr
}

// MarshalBinary encodes the artifact using REZI, field by field: each
// field is length-prefixed by rezi.Enc, appended in a fixed order.
func (a Artifact) MarshalBinary() ([]byte, error) {
	var out []byte

	enc, err := rezi.Enc(a.Start)
	if err != nil {
		return nil, fmt.Errorf("encoding start symbol: %w", err)
	}
	out = append(out, enc...)

	enc, err = rezi.Enc(a.Deletables)
	if err != nil {
		return nil, fmt.Errorf("encoding deletables: %w", err)
	}
	out = append(out, enc...)

	enc, err = rezi.Enc(len(a.Symbols))
	if err != nil {
		return nil, fmt.Errorf("encoding symbol count: %w", err)
	}
	out = append(out, enc...)

	for _, sym := range a.Symbols {
		symEnc, err := encodeSymbol(sym)
		if err != nil {
			return nil, fmt.Errorf("encoding symbol %q: %w", sym.Name, err)
		}
		out = append(out, symEnc...)
	}

	return out, nil
}

func encodeSymbol(sym SymbolRecord) ([]byte, error) {
	var out []byte
	enc, err := rezi.Enc(sym.Name)
	if err != nil {
		return nil, err
	}
	out = append(out, enc...)

	enc, err = rezi.Enc(len(sym.Rules))
	if err != nil {
		return nil, err
	}
	out = append(out, enc...)

	for _, r := range sym.Rules {
		renc, err := rezi.Enc(r)
		if err != nil {
			return nil, err
		}
		out = append(out, renc...)
	}
	return out, nil
}

// UnmarshalBinary decodes an artifact previously written by MarshalBinary.
func (a *Artifact) UnmarshalBinary(data []byte) error {
	var start string
	n, err := rezi.Dec(data, &start)
	if err != nil {
		return fmt.Errorf("decoding start symbol: %w", err)
	}
	data = data[n:]

	var deletables []string
	n, err = rezi.Dec(data, &deletables)
	if err != nil {
		return fmt.Errorf("decoding deletables: %w", err)
	}
	data = data[n:]

	var symCount int
	n, err = rezi.Dec(data, &symCount)
	if err != nil {
		return fmt.Errorf("decoding symbol count: %w", err)
	}
	data = data[n:]

	symbols := make([]SymbolRecord, 0, symCount)
	for i := 0; i < symCount; i++ {
		var name string
		n, err = rezi.Dec(data, &name)
		if err != nil {
			return fmt.Errorf("decoding symbol %d name: %w", i, err)
		}
		data = data[n:]

		var ruleCount int
		n, err = rezi.Dec(data, &ruleCount)
		if err != nil {
			return fmt.Errorf("decoding symbol %d rule count: %w", i, err)
		}
		data = data[n:]

		rules := make([]RuleRecord, 0, ruleCount)
		for j := 0; j < ruleCount; j++ {
			var r RuleRecord
			n, err = rezi.Dec(data, &r)
			if err != nil {
				return fmt.Errorf("decoding symbol %d rule %d: %w", i, j, err)
			}
			data = data[n:]
			rules = append(rules, r)
		}

		symbols = append(symbols, SymbolRecord{Name: name, Rules: rules})
	}

	a.Start = start
	a.Deletables = deletables
	a.Symbols = symbols
	return nil
}

// ToJSON renders the artifact as indented JSON, for cmd/gramc's --json
// output.
func (a Artifact) ToJSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}
