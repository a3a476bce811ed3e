package markup

// Walk traverses the tree depth-first in document order and calls fn for
// each node. If fn returns false, the children of that node are skipped.
func Walk(node *Node, fn func(node *Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range node.Children {
		Walk(c, fn)
	}
}

// Visitor receives enter and leave events during Traverse.
type Visitor interface {
	// Enter is called before the children of n. Returning false skips the
	// children; Leave is still called.
	Enter(n *Node) bool
	Leave(n *Node)
}

// Traverse walks the tree pre-order, calling v.Enter before and v.Leave
// after the children of every node.
func Traverse(node *Node, v Visitor) {
	if node == nil {
		return
	}
	if v.Enter(node) {
		for _, c := range node.Children {
			Traverse(c, v)
		}
	}
	v.Leave(node)
}

// FindAll returns every node of the given kind in document order.
func FindAll(root *Node, kind Kind) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}
