package ambiguity

import (
	"sort"

	"github.com/pellham/nlgram/internal/config"
	"github.com/pellham/nlgram/internal/grammar"
	"github.com/pellham/nlgram/internal/util"
)

// Witness records a single confirmed ambiguity: two distinct authored
// rules of the same symbol that, after independent bounded enumeration,
// reach an identical fringe.
type Witness struct {
	Symbol string
	RuleA  *grammar.Rule
	RuleB  *grammar.Rule
	Fringe string
	TreeA  *TreeNode
	TreeB  *TreeNode
}

// enumerateRoot enumerates every bounded leftmost derivation reachable
// from root rule r, calling record for each one that terminates (NextSym
// becomes ""). Derivations that exceed symsLimit before terminating are
// simply dropped; the detector treats them as inconclusive, not as a
// match.
func enumerateRoot(g *grammar.Grammar, r *grammar.Rule, symsLimit int, record func(p *Path)) {
	start := &Path{}
	first := expand(start, r)
	if first.NextSym == "" {
		record(first)
		return
	}

	active := []*Path{first}
	for len(active) > 0 {
		var next []*Path
		for _, p := range active {
			if p.SymsCount >= symsLimit {
				continue
			}
			sym, ok := g.Symbol(p.NextSym)
			if !ok {
				continue
			}
			for _, cr := range sym.NonEditRules() {
				cand := expand(p, cr)
				if cand.NextSym == "" {
					record(cand)
					continue
				}
				next = append(next, cand)
			}
		}
		active = next
	}
}

// fringe returns the signature two paths must share to count as the same
// completed derivation: the terminal string and, since diffTrim compares
// full completed derivations only, an empty frontier (fringe is only
// computed for completed paths).
func fringe(p *Path) string {
	return p.Terminals
}

// Detect runs the bounded-enumeration ambiguity detector over every
// symbol of g with two or more non-edit rules (see Symbol.NonEditRules). With
// cfg.FindAll false, it stops at the first witness found for each rule
// pair; with it true, every distinct fringe collision is reported.
func Detect(g *grammar.Grammar, cfg config.DetectorConfig) []Witness {
	var out []Witness

	for _, name := range g.SymbolNames() {
		sym, _ := g.Symbol(name)
		rules := sym.NonEditRules()
		if len(rules) < 2 {
			continue
		}

		perRoot := make([]util.SVSet[[]*Path], len(rules))
		for i, r := range rules {
			byFringe := util.NewSVSet[[]*Path]()
			enumerateRoot(g, r, cfg.SymsLimit, func(p *Path) {
				key := fringe(p)
				byFringe.Set(key, append(byFringe.Get(key), p))
			})
			perRoot[i] = byFringe
		}

		for i := 0; i < len(rules); i++ {
			for j := i + 1; j < len(rules); j++ {
				var keys []string
				for _, k := range perRoot[i].Elements() {
					if perRoot[j].Has(k) {
						keys = append(keys, k)
					}
				}
				sort.Strings(keys)

				for _, k := range keys {
					pathsA := perRoot[i].Get(k)
					pathsB := perRoot[j].Get(k)
					sort.Slice(pathsA, func(x, y int) bool { return pathsA[x].SymsCount < pathsA[y].SymsCount })
					sort.Slice(pathsB, func(x, y int) bool { return pathsB[x].SymsCount < pathsB[y].SymsCount })

					pa, pb := pathsA[0], pathsB[0]
					ta := buildTree(name, pa.chain)
					tb := buildTree(name, pb.chain)
					ta, tb = diffTrim(ta, tb)

					out = append(out, Witness{
						Symbol: name,
						RuleA:  rules[i],
						RuleB:  rules[j],
						Fringe: k,
						TreeA:  ta,
						TreeB:  tb,
					})

					if !cfg.FindAll {
						break
					}
				}
			}
		}
	}

	return out
}
