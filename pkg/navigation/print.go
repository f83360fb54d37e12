package navigation

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree renders the node and its subtree in serialization order, for debugging
// and the command line.
func Tree(n Node) treeprint.Tree {
	t := treeprint.NewWithRoot(describe(n))
	addBranches(t, n)
	return t
}

func addBranches(t treeprint.Tree, n Node) {
	for _, child := range n.sortedChildren() {
		if child.HasChildren() {
			addBranches(t.AddBranch(describe(child)), child)
			continue
		}
		t.AddNode(describe(child))
	}
}

func describe(n Node) string {
	s := n.name
	if n.view != "" {
		s = fmt.Sprintf("%s -> %s", s, n.view)
	}
	if p, ok := n.Position(); ok {
		s = fmt.Sprintf("%s [%d]", s, p)
	}
	if n.disabled {
		s += " (disabled)"
	}
	return s
}
