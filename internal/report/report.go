// Package report renders ambiguity witnesses for human consumption,
// using rosed for wrapped-text layout.
package report

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/pellham/nlgram/internal/ambiguity"
)

const treeIndent = "  "

// RenderWitness renders a single ambiguity witness as two side-by-side
// labeled parse-tree fragments, trimmed to their point of divergence.
func RenderWitness(w ambiguity.Witness) string {
	var sb strings.Builder

	header := fmt.Sprintf("ambiguity in %s: %q vs %q (fringe %q)",
		w.Symbol, w.RuleA.String(), w.RuleB.String(), w.Fringe)
	sb.WriteString(rosed.Edit(header).Wrap(72).String())
	sb.WriteString("\n\n")

	data := [][]string{
		{"rule A", "rule B"},
		{renderTree(w.TreeA, 0), renderTree(w.TreeB, 0)},
	}
	table := rosed.Edit("").
		InsertTableOpts(0, data, 36, rosed.Options{
			TableBorders: true,
		}).
		String()
	sb.WriteString(table)

	return sb.String()
}

// RenderWitnesses renders every witness in order, separated by a blank
// line, or a one-line "no ambiguity found" message when there are none.
func RenderWitnesses(ws []ambiguity.Witness) string {
	if len(ws) == 0 {
		return "no ambiguity found"
	}
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = RenderWitness(w)
	}
	return strings.Join(parts, "\n")
}

func renderTree(n *ambiguity.TreeNode, depth int) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(treeIndent, depth))
	sb.WriteString(n.Symbol)
	if n.Rule != nil && n.Rule.Terminal {
		sb.WriteString(fmt.Sprintf(" -> %q", n.Text))
	}
	for _, c := range n.Children {
		sb.WriteString("\n")
		sb.WriteString(renderTree(c, depth+1))
	}
	return sb.String()
}
