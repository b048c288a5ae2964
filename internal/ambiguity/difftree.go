package ambiguity

import "github.com/pellham/nlgram/internal/grammar"

// TreeNode is a reconstructed parse-tree node along one enumerated path,
// used to render a human-readable ambiguity witness.
type TreeNode struct {
	Symbol   string
	Rule     *grammar.Rule
	Text     string
	Children []*TreeNode
}

// buildTree replays a path's rule chain from root to leaf, reconstructing
// the parse tree using the same frontier-management shape as expand: a
// plain slice standing in for the persistent stack, since this replay is
// never shared across paths.
func buildTree(rootSym string, chain *chainNode) *TreeNode {
	rules := make([]*grammar.Rule, 0)
	for c := chain; c != nil; c = c.prev {
		rules = append(rules, c.rule)
	}
	// reverse to root-to-leaf order
	for i, j := 0, len(rules)-1; i < j; i, j = i+1, j-1 {
		rules[i], rules[j] = rules[j], rules[i]
	}

	root := &TreeNode{Symbol: rootSym}
	pending := []*TreeNode{root}

	for _, r := range rules {
		if len(pending) == 0 {
			break
		}
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		cur.Rule = r

		if r.Terminal {
			if r.IsEmpty() {
				cur.Text = ""
			} else {
				cur.Text = r.Text.String()
			}
			continue
		}

		children := make([]*TreeNode, len(r.RHS))
		for i, sym := range r.RHS {
			children[i] = &TreeNode{Symbol: sym}
		}
		cur.Children = children
		// Push right-to-left so the leftmost child is popped first,
		// mirroring expand's frontier push order.
		for i := len(children) - 1; i >= 0; i-- {
			pending = append(pending, children[i])
		}
	}

	return root
}

// TreeEqual reports whether two reconstructed trees are structurally
// identical: same symbol, same applied rule (by identity, since rules are
// never copied once added to a grammar), and recursively equal children.
func TreeEqual(a, b *TreeNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Symbol != b.Symbol || a.Rule != b.Rule || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !TreeEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// diffTrim removes subtrees shared between two derivation trees, leaving
// only the portion where the derivations actually diverge. At each level
// it trims matching trailing (rightmost) sibling subtrees, right to
// left, then -- since the first non-matching pair may itself share a
// nested subtree further down -- recurses into that pair along the
// rightmost spine to trim there too. This walks the same rightmost-leaf
// path the two derivations last shared, pruning identical subtrees all
// the way up to the point where the trees genuinely differ.
func diffTrim(ta, tb *TreeNode) (*TreeNode, *TreeNode) {
	if ta == nil || tb == nil {
		return ta, tb
	}

	ca := append([]*TreeNode(nil), ta.Children...)
	cb := append([]*TreeNode(nil), tb.Children...)

	for len(ca) > 0 && len(cb) > 0 && TreeEqual(ca[len(ca)-1], cb[len(cb)-1]) {
		ca = ca[:len(ca)-1]
		cb = cb[:len(cb)-1]
	}

	if len(ca) > 0 && len(cb) > 0 {
		ca[len(ca)-1], cb[len(cb)-1] = diffTrim(ca[len(ca)-1], cb[len(cb)-1])
	}

	outA := &TreeNode{Symbol: ta.Symbol, Rule: ta.Rule, Text: ta.Text, Children: ca}
	outB := &TreeNode{Symbol: tb.Symbol, Rule: tb.Rule, Text: tb.Text, Children: cb}
	return outA, outB
}
